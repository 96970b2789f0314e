// internal/email/sender.go
package email

import (
	"context"
	"fmt"
	"log"
	"time"

	"merowoda-service/internal/config"

	"gopkg.in/gomail.v2"
)

// Mailer is the one-way notification gateway capability injected into the
// services. Delivery is best effort; SendAsync never reports failure to the
// caller.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
	SendAsync(to, subject, htmlBody string)
}

type Sender struct {
	cfg *config.Config
}

func NewSender(cfg *config.Config) *Sender {
	return &Sender{cfg: cfg}
}

// Send delivers a single email over SMTP. One attempt only — failed sends
// are not retried.
func (s *Sender) Send(ctx context.Context, to, subject, htmlBody string) error {
	log.Printf("📧 [SEND] To: %s | Subject: %s", to, subject)

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", s.cfg.SMTPFromName, s.cfg.SMTPFrom))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPass)

	done := make(chan error, 1)
	go func() { done <- dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("❌ [FAILED] Email to %s: %v", to, err)
			return fmt.Errorf("send email to %s: %w", to, err)
		}
	case <-ctx.Done():
		return fmt.Errorf("email send cancelled: %w", ctx.Err())
	}

	log.Printf("✅ [SUCCESS] Email sent to %s (Subject: %s)", to, subject)
	return nil
}

// SendAsync initiates delivery in a detached goroutine and returns
// immediately. Failures are logged, never surfaced.
func (s *Sender) SendAsync(to, subject, htmlBody string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Send(ctx, to, subject, htmlBody); err != nil {
			log.Printf("⚠️ Background email to %s failed: %v", to, err)
		}
	}()
	log.Printf("📧 [QUEUED] Email queued for async delivery to %s", to)
}
