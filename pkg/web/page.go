// Package web serve a página única que consome /api/items.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// StaticPrefix é o prefixo de rota dos arquivos estáticos.
const StaticPrefix = "/static/"

//go:embed templates/index.html
var templates embed.FS

//go:embed static
var static embed.FS

type pageData struct {
	Title        string
	Table        string
	StaticPrefix string
}

// Page é a página inicial já renderizada.
type Page struct {
	html []byte
}

// NewPage renderiza o template uma única vez; o conteúdo não depende da requisição.
func NewPage(table string) (*Page, error) {
	tmpl, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, pageData{
		Title:        "DynamoDB Items",
		Table:        table,
		StaticPrefix: StaticPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("web: render template: %w", err)
	}
	return &Page{html: buf.Bytes()}, nil
}

// HTML devolve o corpo da página.
func (p *Page) HTML() []byte {
	return p.html
}

func (p *Page) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(p.html)
}

// StaticHandler serve os arquivos embutidos sob StaticPrefix.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// só falha se o diretório embutido mudar de nome
		panic(err)
	}
	return http.StripPrefix(StaticPrefix, http.FileServer(http.FS(sub)))
}
