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
//
// Package envloader carrega variáveis de ambiente diretamente para campos de
// uma struct Go, usando as tags `env` e `envDefault`.
//
// Funcionalidades Principais:
// - Mapeamento por Tag: `env:"VAR_NAME"`, opcionalmente `env:"VAR_NAME,required"`.
// - Valores Padrão: `envDefault:"value"` quando a variável está ausente ou vazia.
// - Tipos: string, int*, uint*, bool, float*, time.Duration e []string (separado por vírgula).
// - Aninhamento: structs e ponteiros para struct sem tag são processados recursivamente.
// - Arquivos .env: `LoadDotEnv` usa github.com/joho/godotenv e ignora arquivos ausentes.
//
// Exemplo Básico:
//
//	type Config struct {
//		Table string        `env:"DYNAMODB_TABLE,required"`
//		Port  int           `env:"PORT" envDefault:"5000"`
//		Wait  time.Duration `env:"WAIT" envDefault:"2s"`
//	}
//
//	_ = envloader.LoadDotEnv()
//	var cfg Config
//	if err := envloader.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package envloader
