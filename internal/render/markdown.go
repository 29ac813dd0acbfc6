package render

import (
	"bytes"
	"html/template"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer strips dangerous elements from rendered markdown while
// keeping the safe formatting tags. Project descriptions are admin-entered
// but sanitizing keeps the public pages safe regardless of the source.
var htmlSanitizer = bluemonday.UGCPolicy()

// Markdown converts markdown text to sanitized HTML. Conversion failures
// fall back to the escaped source text so a bad description never breaks
// the page.
func Markdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		slog.Warn("markdown conversion failed", "error", err)
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(htmlSanitizer.SanitizeBytes(buf.Bytes()))
}
