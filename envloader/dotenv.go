package envloader

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadDotEnv carrega arquivos .env para o ambiente do processo.
//
// Sem argumentos lê ".env". Arquivos inexistentes são ignorados e variáveis
// já definidas no ambiente não são sobrescritas.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return &DotEnvError{File: f, Err: err}
		}
	}
	return nil
}
