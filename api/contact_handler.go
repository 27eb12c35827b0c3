package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sakthirv/portfolio-backend/errs"
	"github.com/sakthirv/portfolio-backend/services"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	cfg       map[string]string
}

func newContactHandler(cfg map[string]string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		cfg:       cfg,
	}
}

// submit relays a contact-form submission by email
// @Summary Submit contact form
// @Description Validates the submission and relays it to the portfolio owner, with a confirmation to the sender
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body services.ContactMessage true "Contact form fields"
// @Success 200 {object} map[string]any "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing fields"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Email relay failed"
// @Router /api/contact [post]
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg services.ContactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		switch {
		case strings.TrimSpace(msg.Name) == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		case strings.TrimSpace(msg.Email) == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		case strings.TrimSpace(msg.Message) == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		h.logger.Info().Str("name", msg.Name).Str("email", msg.Email).Msg("Contact form submission received")

		if err := services.SendContactEmails(h.cfg, msg); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to send message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"message": "Message sent successfully! You will receive a confirmation email shortly.",
		})
	}
}
