package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sakthirv/portfolio-backend/config"
	"github.com/sakthirv/portfolio-backend/database"
	"github.com/sakthirv/portfolio-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	jwtSecret []byte
	tokenTTL  time.Duration
}

func newAuthHandler(userRepo *database.UserRepo, cfg map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		jwtSecret: []byte(config.GetString(cfg, "JWT_SECRET", "")),
		tokenTTL:  time.Duration(config.GetInt(cfg, "TOKEN_TTL_HOURS", 24)) * time.Hour,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}

// login verifies admin credentials and issues a signed bearer token
// @Summary Log in
// @Description Verifies username/password and returns a JWT for the import and admin endpoints
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Admin credentials"
// @Success 200 {object} loginResponse "Token and user info"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid credentials"
// @Router /api/auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		if req.Username == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		user, err := h.userRepo.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}

		if user == nil || !user.CheckPassword(req.Password) {
			h.logger.Warn().Str("username", req.Username).Msg("Rejected login attempt")
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		claims := jwt.MapClaims{
			"userId": user.ID.String(),
			"exp":    time.Now().Add(h.tokenTTL).Unix(),
			"iat":    time.Now().Unix(),
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString(h.jwtSecret)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to sign token", err))
			return
		}

		var response loginResponse
		response.Token = signed
		response.User.ID = user.ID.String()
		response.User.Username = user.Username

		h.logger.Info().Str("username", user.Username).Msg("Login successful")
		h.responder.WriteJSON(w, response)
	}
}
