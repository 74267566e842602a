// Package planner traduz os parâmetros de /api/items em uma estratégia de
// leitura.
//
// Com key e value preenchidos a consulta vai para FetchByKey; em qualquer
// outro caso (inclusive só um dos dois) lê a tabela inteira com FetchAll.
package planner
