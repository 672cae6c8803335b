package itinerary

import (
	"html/template"
	"strings"
)

// ToHTML converts model text for display, turning line breaks into <br>.
// Unless trusted, the text is escaped first so model output cannot inject
// markup.
func ToHTML(text string, trusted bool) template.HTML {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if !trusted {
		text = template.HTMLEscapeString(text)
	}
	return template.HTML(strings.ReplaceAll(text, "\n", "<br>"))
}
