package auth

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/eventbook/event-booking-api/internal/config"
	"github.com/eventbook/event-booking-api/internal/models"
	"github.com/eventbook/event-booking-api/internal/store"
	"github.com/eventbook/event-booking-api/pkg/apperrors"
)

type AuthHandler struct {
	cfg   *config.Config
	users *store.UserStore
}

func NewAuthHandler(cfg *config.Config, users *store.UserStore) *AuthHandler {
	return &AuthHandler{cfg: cfg, users: users}
}

// AuthInput is embedded by every request that may carry a bearer token.
type AuthInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

// UserProfile is the public view of a user returned on login.
type UserProfile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type SignupRequest struct {
	Body struct {
		Username string `json:"username" doc:"Unique login name"`
		Password string `json:"password" doc:"Plaintext password, stored hashed"`
		Role     string `json:"role,omitempty" doc:"host or participant, defaults to participant"`
		Name     string `json:"name,omitempty" doc:"Display name, defaults to username"`
	}
}

type SignupResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func (h *AuthHandler) HandleSignup(ctx context.Context, input *SignupRequest) (*SignupResponse, error) {
	if _, err := h.users.Register(ctx, input.Body.Username, input.Body.Password, input.Body.Role, input.Body.Name); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, huma.Error400BadRequest("User already exists")
		}
		return nil, apperrors.ToHuma(err)
	}

	res := &SignupResponse{}
	res.Body.Message = "User registered"
	return res, nil
}

type LoginRequest struct {
	Body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
}

type LoginResponse struct {
	Body struct {
		Token string      `json:"token"`
		User  UserProfile `json:"user"`
	}
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*LoginResponse, error) {
	user, err := h.users.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			// Same response for unknown user and wrong password.
			return nil, huma.Error401Unauthorized("Invalid credentials")
		}
		return nil, apperrors.ToHuma(err)
	}

	token, err := h.GenerateToken(user.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &LoginResponse{}
	res.Body.Token = token
	res.Body.User = profileOf(user)
	return res, nil
}

func profileOf(user *models.User) UserProfile {
	return UserProfile{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}
}
