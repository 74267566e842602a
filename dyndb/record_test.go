package dyndb

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRecord_AttributeTypes(t *testing.T) {
	raw := map[string]types.AttributeValue{
		"id":     &types.AttributeValueMemberS{Value: "user-1"},
		"age":    &types.AttributeValueMemberN{Value: "42"},
		"score":  &types.AttributeValueMemberN{Value: "12345678901234567890"},
		"active": &types.AttributeValueMemberBOOL{Value: true},
		"gone":   &types.AttributeValueMemberNULL{Value: true},
		"tags":   &types.AttributeValueMemberSS{Value: []string{"a", "b"}},
		"profile": &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{
			"city":  &types.AttributeValueMemberS{Value: "Recife"},
			"zip":   &types.AttributeValueMemberN{Value: "50000"},
			"langs": &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: "go"}, &types.AttributeValueMemberN{Value: "1.5"}}},
		}},
	}

	rec, err := toRecord(raw)
	require.NoError(t, err)

	assert.Equal(t, "user-1", rec["id"])
	assert.Equal(t, json.Number("42"), rec["age"])
	assert.Equal(t, true, rec["active"])
	assert.Nil(t, rec["gone"])

	body, err := json.Marshal(rec)
	require.NoError(t, err)

	// Números saem como números JSON, sem perder dígitos.
	assert.Contains(t, string(body), `"score":12345678901234567890`)
	assert.Contains(t, string(body), `"age":42`)
	assert.Contains(t, string(body), `"zip":50000`)
	assert.Contains(t, string(body), `"langs":["go",1.5]`)
	assert.Contains(t, string(body), `"tags":["a","b"]`)
}

func TestToRecords_Empty(t *testing.T) {
	recs, err := toRecords(nil)

	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestPage_More(t *testing.T) {
	assert.False(t, Page{}.More())
	assert.False(t, Page{LastKey: map[string]types.AttributeValue{}}.More())
	assert.True(t, Page{LastKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "1"}}}.More())
}
