package services

import (
	"fmt"
	"html"

	"github.com/rs/zerolog/log"
	"github.com/sakthirv/portfolio-backend/config"
)

// ContactMessage is a visitor submission from the portfolio contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

const ownerEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #3b82f6;">New Contact Form Submission</h2>
  <div style="background: #f8fafc; padding: 20px; border-radius: 8px;">
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Message:</strong> %s</p>
  </div>
</div>`

const confirmationEmailTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #10b981;">Thank You for Reaching Out!</h2>
  <div style="background: #f0fdf4; padding: 20px; border-radius: 8px;">
    <p><strong>Hello %s,</strong></p>
    <p>Thank you for contacting me. I have received your message and will get back to you within 24 hours.</p>
  </div>
</div>`

// SendContactEmails relays a contact-form submission: one notification to
// the portfolio owner (CONTACT_EMAIL) and one confirmation to the visitor.
// The notification must go through; a failed confirmation is logged but does
// not fail the submission.
func SendContactEmails(cfg map[string]string, msg ContactMessage) error {
	contactEmail := config.GetString(cfg, "CONTACT_EMAIL", "")
	if contactEmail == "" {
		return fmt.Errorf("CONTACT_EMAIL environment variable is required")
	}

	// Form fields end up inside HTML bodies, escape them
	safeName := html.EscapeString(msg.Name)
	safeEmail := html.EscapeString(msg.Email)
	safeMessage := html.EscapeString(msg.Message)

	ownerBody := fmt.Sprintf(ownerEmailTemplate, safeName, safeEmail, safeMessage)
	ownerSubject := fmt.Sprintf("New Portfolio Message - %s", msg.Name)

	if err := SendEmail(cfg, ownerSubject, ownerBody, []string{contactEmail}); err != nil {
		return fmt.Errorf("failed to send owner notification: %w", err)
	}

	confirmationBody := fmt.Sprintf(confirmationEmailTemplate, safeName)
	if err := SendEmail(cfg, "Message Received - Portfolio", confirmationBody, []string{msg.Email}); err != nil {
		log.Error().Err(err).Str("recipient", msg.Email).Msg("Failed to send confirmation email")
	}

	return nil
}
