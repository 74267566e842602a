// dyndb/record.go
package dyndb

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// decodeNumbers faz o decoder devolver attributevalue.Number em vez de
// float64, preservando os dígitos originais de N.
func decodeNumbers(o *attributevalue.DecoderOptions) {
	o.UseNumber = true
}

// toRecords converte os itens crus de uma página em Records.
func toRecords(items []map[string]types.AttributeValue) ([]Record, error) {
	records := make([]Record, 0, len(items))
	for _, item := range items {
		rec, err := toRecord(item)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func toRecord(item map[string]types.AttributeValue) (Record, error) {
	raw := map[string]any{}
	if err := attributevalue.UnmarshalMapWithOptions(item, &raw, decodeNumbers); err != nil {
		return nil, fmt.Errorf("dyndb: unmarshal failed: %w", err)
	}
	for k, v := range raw {
		raw[k] = normalize(v)
	}
	return raw, nil
}

// normalize troca attributevalue.Number por json.Number, que é serializado
// como número JSON sem perda de precisão.
func normalize(v any) any {
	switch val := v.(type) {
	case attributevalue.Number:
		return json.Number(val)
	case []attributevalue.Number:
		out := make([]json.Number, len(val))
		for i, n := range val {
			out[i] = json.Number(n)
		}
		return out
	case map[string]any:
		for k, inner := range val {
			val[k] = normalize(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = normalize(inner)
		}
		return val
	default:
		return v
	}
}
