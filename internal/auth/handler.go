package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/securesign/securesign/internal/identity"
)

// Handler exposes the register/login endpoints. It orchestrates the identity
// service (credentials) and the token service (bearer tokens).
type Handler struct {
	ids    *identity.Service
	tokens *TokenService
}

// NewHandler constructs an auth HTTP handler.
func NewHandler(ids *identity.Service, tokens *TokenService) *Handler {
	return &Handler{ids: ids, tokens: tokens}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Register creates a new account. A duplicate email yields 409.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.ids.Register(c.UserContext(), identity.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			return fiber.NewError(http.StatusConflict, "email exists")
		}
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusOK).JSON(registerResponse{ID: user.ID, Email: user.Email})
}

// Login verifies credentials and returns a signed bearer token. Unknown email
// and wrong password produce the same 401.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	user, err := h.ids.Authenticate(c.UserContext(), identity.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "invalid credentials")
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(loginResponse{Token: token})
}

// Me returns the identity claims of the presented bearer token. It reads only
// the token; no database round-trip.
func (h *Handler) Me(c *fiber.Ctx) error {
	claims, ok := c.Locals(ClaimsLocal).(Claims)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, "missing token claims")
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"id":    claims.Subject,
		"email": claims.Email,
	})
}

// ClaimsLocal is the fiber locals key under which the bearer middleware stores
// validated claims.
const ClaimsLocal = "auth_claims"
