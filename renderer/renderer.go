// Package renderer renders the outcome of commands and the views of a store as
// markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/transact"
	"github.com/etnz/transact/command"
)

//go:embed templates/*.md
var templates embed.FS

// Options holds the display settings.
type Options struct {
	Currency string // Currency is the ISO code used to display amounts, e.g. "USD".
}

// RenderResult renders the feedback of a command, followed by the view of the
// store matching the result's tab.
func RenderResult(res command.Result, s *transact.Store, opts Options) string {
	return renderPage(newPage(res.Feedback, res.Tab, s, opts))
}

// RenderPersons renders the person view of s.
func RenderPersons(s *transact.Store, opts Options) string {
	return renderPage(newPage("", command.TabPersons, s, opts))
}

// RenderTransactions renders the transaction view of s.
func RenderTransactions(s *transact.Store, opts Options) string {
	return renderPage(newPage("", command.TabTransactions, s, opts))
}

func renderPage(p *Page) string {
	partials := map[string]string{
		"persons":      "persons.md",
		"transactions": "transactions.md",
	}
	return strings.TrimLeft(renderTemplate("page", "page.md", partials, p), "\n")
}

// funcs are the functions available to all templates.
var funcs = template.FuncMap{
	"cell": cell,
	"join": strings.Join,
}

// cell escapes s to fit in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
