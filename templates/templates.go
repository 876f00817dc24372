// Package templates holds the embedded HTML views. Markup is deliberately
// minimal; every screen state the handlers produce has a place to render,
// nothing more.
package templates

import (
	"embed"
	"html/template"

	"examgen_client/models"
	"examgen_client/tasktext"
)

//go:embed *.tmpl
var files embed.FS

func Load() *template.Template {
	t := template.New("").Funcs(template.FuncMap{
		"formatDate": models.FormatDate,
		"isCorrect":  tasktext.IsCorrectAnswer,
	})
	return template.Must(t.ParseFS(files, "*.tmpl"))
}
