// Package dynamo_items_service é um serviço HTTP mínimo que lista ou filtra
// itens de uma tabela do AWS DynamoDB e os devolve em JSON.
//
// Visão Geral:
// O núcleo é a tradução de uma requisição em consulta: decidir se o pedido
// pode ser atendido por uma busca indexada (Query) ou se precisa de uma
// leitura completa (Scan) com filtro, acumulando páginas até o limite.
//
// Sub-Pacotes Principais:
//
// 1. dyndb:
//   - ItemStore: adaptador de leitura com FetchAll, FetchFiltered e FetchByKey.
//   - Fallback explícito de Query para Scan com filtro via LookupResult.
//
// 2. planner:
//   - Filter derivado da query string (limit, key, value).
//   - Escolha entre busca por chave e leitura completa.
//
// 3. envloader:
//   - Carregamento de variáveis de ambiente (e .env) para structs via tags.
//
// 4. pkg/transport:
//   - Roteador HTTP (GET /, /static/, /api/items), CORS e shutdown gracioso.
//   - Handler para AWS Lambda atrás do API Gateway.
//
// 5. pkg/config, pkg/logger, pkg/observability, pkg/awsconf, pkg/web:
//   - Configuração validada, logs zerolog, métricas Datadog, clientes AWS e a
//     página única.
//
// Exemplo de Início Rápido:
//
//	DYNAMODB_TABLE=orders AWS_REGION=sa-east-1 go run ./cmd/server
//	curl 'localhost:5000/api/items?key=customer_id&value=42&limit=10'
//
// A resposta de sucesso é {"items": [...]}; qualquer falha vira 500 com
// {"error": "..."}.
package dynamo_items_service
