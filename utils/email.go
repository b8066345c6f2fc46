package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/gomail.v2"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount with grouping, e.g. "$5,000.00".
func FormatUSD(amount float64) string {
	return usd.Sprintf("$%.2f", amount)
}

func mailConfigured() bool {
	return os.Getenv("SMTP_HOST") != "" && os.Getenv("ADMIN_EMAILS") != ""
}

func adminRecipients() []string {
	var out []string
	for _, addr := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// SendAdminEmail delivers a plain-text notification to the configured admin
// addresses. Delivery is best effort: failures are logged, never surfaced to
// the request that triggered them.
func SendAdminEmail(subject, body string) {
	if !mailConfigured() {
		log.Printf("⚠️  SMTP not configured, skipping email: %s", subject)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_SENDER"))
	m.SetHeader("To", adminRecipients()...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		465,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
	)

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send admin email %q: %v", subject, err)
		return
	}

	log.Printf("Admin email sent: %s", subject)
}

// NewReferralEmailBody builds the intake notification sent when a referral
// arrives.
func NewReferralEmailBody(childName string, childAge int, guardianName, urgency string) string {
	return fmt.Sprintf(
		"A new referral was submitted.\n\nChild: %s (age %d)\nGuardian: %s\nUrgency: %s\n\nOpen the admin dashboard to review it.",
		childName, childAge, guardianName, urgency,
	)
}
