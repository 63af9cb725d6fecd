// Package mailer sends submission and approval notification emails.
// Delivery is best effort: failures are logged and never fail the request
// that triggered them.
package mailer

import (
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/oldoaktown/backend/config"
	"github.com/oldoaktown/backend/internal/models"
)

// Mailer delivers notifications over SMTP. When SMTP credentials are not
// configured every send is a silent no-op.
type Mailer struct {
	cfg    config.EmailConfig
	logger *zap.Logger
}

// New creates a mailer.
func New(cfg config.EmailConfig, logger *zap.Logger) *Mailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mailer{cfg: cfg, logger: logger}
}

// Enabled reports whether SMTP credentials are configured.
func (m *Mailer) Enabled() bool {
	return m.cfg.SMTPUser != "" && m.cfg.SMTPPass != ""
}

// SubmissionReceived notifies the admin of a new submission and sends the
// customer a confirmation. Runs in the background.
func (m *Mailer) SubmissionReceived(sub *models.Submission) {
	if !m.Enabled() {
		return
	}
	go func() {
		adminMsg, err := m.newMessage(m.cfg.AdminEmail,
			"New Business Listing: "+sub.BusinessName,
			adminNotificationBody(sub))
		if err != nil {
			m.logger.Error("build admin notification failed", zap.Error(err))
			return
		}
		customerMsg, err := m.newMessage(sub.Email,
			"Your Business Listing Submission - Old Oak Town",
			customerConfirmationBody(sub))
		if err != nil {
			m.logger.Error("build customer confirmation failed", zap.Error(err))
			return
		}
		m.send(sub.ID, adminMsg, customerMsg)
	}()
}

// ListingApproved tells the customer their listing is live. Runs in the
// background.
func (m *Mailer) ListingApproved(sub *models.Submission) {
	if !m.Enabled() {
		return
	}
	go func() {
		msg, err := m.newMessage(sub.Email,
			"Your Listing is Live - Old Oak Town",
			approvalBody(sub))
		if err != nil {
			m.logger.Error("build approval email failed", zap.Error(err))
			return
		}
		m.send(sub.ID, msg)
	}()
}

func (m *Mailer) newMessage(to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.FromAddress); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

func (m *Mailer) send(submissionID string, msgs ...*mail.Msg) {
	client, err := mail.NewClient(m.cfg.SMTPHost,
		mail.WithPort(m.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.SMTPUser),
		mail.WithPassword(m.cfg.SMTPPass),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		m.logger.Error("smtp client failed", zap.Error(err), zap.String("submission_id", submissionID))
		return
	}
	if err := client.DialAndSend(msgs...); err != nil {
		m.logger.Error("send email failed", zap.Error(err), zap.String("submission_id", submissionID))
		return
	}
	m.logger.Info("email notifications sent", zap.String("submission_id", submissionID), zap.Int("count", len(msgs)))
}

func adminNotificationBody(sub *models.Submission) string {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	var b strings.Builder
	b.WriteString("New Business Listing Submission\n\n")
	fmt.Fprintf(&b, "Business Name: %s\n", sub.BusinessName)
	fmt.Fprintf(&b, "Category: %s\n", orNA(sub.Category))
	fmt.Fprintf(&b, "Package: %s\n", orNA(sub.Package))
	fmt.Fprintf(&b, "Payment Frequency: %s\n\n", orNA(sub.Frequency))
	b.WriteString("Contact Information:\n")
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "Phone: %s\n", orNA(sub.Phone))
	fmt.Fprintf(&b, "Address: %s\n\n", orNA(sub.Address))
	fmt.Fprintf(&b, "Website: %s\n\n", orNA(sub.Website))
	fmt.Fprintf(&b, "Description:\n%s\n\n", orNA(sub.Description))
	fmt.Fprintf(&b, "Submitted: %s\n", sub.SubmittedAt.Format("2 Jan 2006 15:04 MST"))
	return b.String()
}

func customerConfirmationBody(sub *models.Submission) string {
	return fmt.Sprintf("Dear %s,\n\n"+
		"Thank you for submitting your business to Old Oak Town!\n\n"+
		"We've received your %s listing and our team will review it within 24 hours.\n\n"+
		"You'll receive another email once your listing is live on the site.\n\n"+
		"Best regards,\nThe Old Oak Town Team",
		sub.BusinessName, sub.Package)
}

func approvalBody(sub *models.Submission) string {
	return fmt.Sprintf("Dear %s,\n\n"+
		"Great news - your listing has been approved and is now live in the Old Oak Town business directory!\n\n"+
		"Thank you for being part of the community.\n\n"+
		"Best regards,\nThe Old Oak Town Team",
		sub.BusinessName)
}
