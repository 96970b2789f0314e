package templates

import (
	"html/template"
	"strings"
	"time"
)

var broadcastTmpl = template.Must(template.New("broadcast").Parse(broadcastHTML))

// BroadcastData holds the data for a staff category broadcast email.
type BroadcastData struct {
	FirstName string
	LastName  string
	Category  string
	Year      int
}

// RenderBroadcastEmail renders the category broadcast email HTML.
func RenderBroadcastEmail(data BroadcastData) (string, error) {
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}
	var buf strings.Builder
	err := broadcastTmpl.Execute(&buf, data)
	return buf.String(), err
}
