// Package htmlview renders quiz views as HTML using the element ids and
// classes the quiz page's scripts and stylesheets expect.
package htmlview

import (
	"embed"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/a-h/scentquiz/quiz"
)

//go:embed templates/*.html
var fs embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"tagClass":     tagClass,
	"delay":        delay,
	"suggestion":   quiz.SuggestionText,
	"errorMessage": errorMessage,
}).ParseFS(fs, "templates/*.html"))

func tagClass(k quiz.TagKind) string {
	switch k {
	case quiz.TagKindMore:
		return "note-tag note-tag-more"
	case quiz.TagKindUnavailable:
		return "note-tag note-tag-unavailable"
	}
	return "note-tag"
}

func errorMessage() string {
	return quiz.ErrorMessage
}

func delay(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

// Page is the data for the full quiz page.
type Page struct {
	Input   string
	Gender  string
	Options quiz.Options
	View    quiz.View
	// SearchPath is where the form is submitted when scripts are disabled.
	SearchPath string
	// ResultsPath receives the page script's searches and returns the
	// results fragment. When empty, the page only uses the form.
	ResultsPath   string
	StylesheetURL string
}

// RenderPage writes the complete quiz page.
func RenderPage(w io.Writer, p Page) error {
	return templates.ExecuteTemplate(w, "page.html", p)
}

// RenderResults writes the contents of the results section.
func RenderResults(w io.Writer, v quiz.View) error {
	return templates.ExecuteTemplate(w, "results.html", v)
}
