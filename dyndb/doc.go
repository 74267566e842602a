// Package dyndb fornece o adaptador de leitura sobre uma tabela do AWS
// DynamoDB (Go SDK v2).
//
// Visão Geral:
// O `ItemStore` esconde do chamador a diferença entre uma busca indexada
// (`Query`) e uma leitura completa (`Scan`). Os itens são devolvidos como
// `Record` (map[string]any), sem schema fixo.
//
// Funcionalidades Principais:
// - FetchAll: Scan paginado, acumulando páginas até acabar ou atingir o limite.
// - FetchFiltered: Scan paginado com filtro de igualdade reenviado a cada página.
// - FetchByKey: Query de uma página; se o DynamoDB rejeitar o atributo como
//   chave (ValidationException), cai para FetchFiltered.
// - KeyLookup: a busca por chave com resultado explícito (`LookupResult`).
// - Builder Fluente: `Scan().FilterEqual(...).Limit(...).StartKey(...).Page(ctx)`.
// - Mocks Integrados: `MockDynamoClient` para testes unitários.
//
// Limite:
// Em todas as operações, limit <= 0 significa "sem limite".
//
// Exemplo de Uso:
//
//	cfg := dyndb.TableConfig{TableName: "Items"}
//	store, err := dyndb.New(dynamodb.NewFromConfig(awsCfg), cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Tenta Query em "pk"; se "pk" não for chave, faz Scan com filtro.
//	items, err := store.FetchByKey(ctx, "pk", "user-1", 50)
//
// Observação:
// A busca por chave não é paginada, enquanto o scan com filtro é.
package dyndb
