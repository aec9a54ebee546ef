package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html
var files embed.FS

// Layout usado por todas as páginas
const Layout = "layouts/main"

// NewEngine carrega os templates embutidos no binário
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
