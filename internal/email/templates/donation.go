// merowoda-service/internal/email/templates/donation.go
package templates

import (
	"html/template"
	"strings"
	"time"
)

var (
	donationThanksTmpl  = template.Must(template.New("donation_thanks").Parse(donationThanksHTML))
	donationWelcomeTmpl = template.Must(template.New("donation_welcome").Parse(donationWelcomeHTML))
)

// DonationData holds the data for both donation acknowledgment emails.
// Amount is the formatted decimal string, e.g. "110.50".
type DonationData struct {
	FirstName string
	LastName  string
	Amount    string
	Year      int
}

// RenderDonationThanksEmail renders the thank-you email for an existing user.
func RenderDonationThanksEmail(data DonationData) (string, error) {
	return renderDonation(donationThanksTmpl, data)
}

// RenderDonationWelcomeEmail renders the thank-you-please-subscribe email
// for a first-time donor with no subscription.
func RenderDonationWelcomeEmail(data DonationData) (string, error) {
	return renderDonation(donationWelcomeTmpl, data)
}

func renderDonation(tmpl *template.Template, data DonationData) (string, error) {
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}
	var buf strings.Builder
	err := tmpl.Execute(&buf, data)
	return buf.String(), err
}
