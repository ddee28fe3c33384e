package notify

import (
	"net/smtp" // SMTP relay
	"strings"  // Message assembly

	"github.com/sirupsen/logrus" // Logging library
)

// Mailer sends a single message. Implementations report failure through the
// returned error and must not panic.
type Mailer interface {
	Send(subject, body, from string, to []string) error
}

// SMTPMailer delivers mail through a plain SMTP relay.
type SMTPMailer struct {
	Addr string // Relay address, host:port
}

// Send delivers one message through the relay.
func (m *SMTPMailer) Send(subject, body, from string, to []string) error {
	msg := strings.Join([]string{
		"From: " + from,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")
	return smtp.SendMail(m.Addr, nil, from, to, []byte(msg))
}

// Notifier dispatches best-effort status-change mail. Delivery failures are
// logged and swallowed; callers never see an error and the triggering write
// is never rolled back.
type Notifier struct {
	mailer Mailer // Underlying mail transport
	from   string // Sender address
}

// NewNotifier wraps a mailer with the configured sender address.
func NewNotifier(mailer Mailer, from string) *Notifier {
	return &Notifier{mailer: mailer, from: from}
}

// StatusChanged sends one notification to the owning account's email.
func (n *Notifier) StatusChanged(email, subject, body string) {
	if err := n.mailer.Send(subject, body, n.from, []string{email}); err != nil {
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"recipient": email,       // Owning account's email
			"subject":   subject,     // Mail subject
			"error":     err.Error(), // Error message
		}).Warn("Status notification failed") // Log delivery failure
	}
}
