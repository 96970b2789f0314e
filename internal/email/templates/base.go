package templates

import (
	_ "embed"
)

//go:embed welcome.html
var welcomeHTML string

//go:embed donation_thanks.html
var donationThanksHTML string

//go:embed donation_welcome.html
var donationWelcomeHTML string

//go:embed broadcast.html
var broadcastHTML string
