// merowoda-service/internal/email/templates/welcome.go
package templates

import (
	"html/template"
	"strings"
	"time"
)

var welcomeTmpl = template.Must(template.New("welcome").Parse(welcomeHTML))

// WelcomeData holds the data for the subscription welcome email. Only the
// categories the user opted into are named in the message.
type WelcomeData struct {
	FirstName  string
	LastName   string
	Categories []string
	Year       int
}

// RenderWelcomeEmail renders the subscription welcome email HTML.
func RenderWelcomeEmail(data WelcomeData) (string, error) {
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}
	list := strings.Join(data.Categories, ", ")
	if list == "" {
		list = "none yet"
	}
	var buf strings.Builder
	err := welcomeTmpl.Execute(&buf, struct {
		WelcomeData
		CategoryList string
	}{data, list})
	return buf.String(), err
}
