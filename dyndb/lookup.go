// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package dyndb

import (
	"errors"

	"github.com/aws/smithy-go"
)

// validationExceptionCode é o código que o DynamoDB devolve quando o atributo
// informado não faz parte do schema de chaves da tabela (ou do índice).
const validationExceptionCode = "ValidationException"

// LookupStatus classifica o resultado de uma busca por chave.
type LookupStatus int

const (
	// LookupOK indica que o Query foi aceito pelo DynamoDB.
	LookupOK LookupStatus = iota
	// LookupValidationRejected indica que o atributo não é chave.
	LookupValidationRejected
	// LookupFailed cobre qualquer outra falha (rede, throttling, permissão).
	LookupFailed
)

func (s LookupStatus) String() string {
	switch s {
	case LookupOK:
		return "ok"
	case LookupValidationRejected:
		return "validation_rejected"
	case LookupFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LookupResult é o resultado explícito de KeyLookup.
//
// Err é preenchido apenas quando Status != LookupOK.
type LookupResult struct {
	Status LookupStatus
	Items  []Record
	Err    error
}

// classifyLookupError separa a rejeição estrutural do Query das demais falhas.
func classifyLookupError(err error) LookupStatus {
	if err == nil {
		return LookupOK
	}
	var ae smithy.APIError
	if errors.As(err, &ae) && ae.ErrorCode() == validationExceptionCode {
		return LookupValidationRejected
	}
	return LookupFailed
}
