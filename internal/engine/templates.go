package engine

import (
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("engine").Funcs(template.FuncMap{
	"count": countOr,
}).ParseFS(templateFS, "templates/*.md.tmpl"))

// countOr renders n, or word when the count is unknown.
func countOr(n int, word string) string {
	if n <= 0 {
		return word
	}
	return strconv.Itoa(n)
}

func render(name string, data any) string {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name+".md.tmpl", data); err != nil {
		// Only reachable when a template names a field answerData lacks.
		panic(fmt.Sprintf("engine: render %s: %v", name, err))
	}
	return strings.TrimSpace(b.String())
}
