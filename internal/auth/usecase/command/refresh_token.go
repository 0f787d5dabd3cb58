package command

import (
	userdomain "github.com/inventoryops/warehouse-api/internal/user/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	"github.com/inventoryops/warehouse-api/pkg/auth"
)

// RefreshTokenCommand rotates a refresh token
type RefreshTokenCommand struct {
	RefreshToken string
}

// RefreshTokenHandler handles the refresh token command
type RefreshTokenHandler struct {
	users  userdomain.UserRepository
	tokens *auth.TokenManager
}

// NewRefreshTokenHandler creates a new refresh token handler
func NewRefreshTokenHandler(users userdomain.UserRepository, tokens *auth.TokenManager) *RefreshTokenHandler {
	return &RefreshTokenHandler{users: users, tokens: tokens}
}

// Handle executes the refresh command. The supplied token must match
// the stored one exactly: a token superseded by rotation or cleared by
// logout fails the comparison, which is how reuse is detected. On
// success a new pair is issued and the stored token is overwritten.
func (h *RefreshTokenHandler) Handle(cmd RefreshTokenCommand) (*LoginResponse, error) {
	if cmd.RefreshToken == "" {
		return nil, apperror.Validation("refresh token is required")
	}

	claims, err := h.tokens.ValidateRefreshToken(cmd.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := h.users.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != cmd.RefreshToken {
		return nil, apperror.Forbidden("Invalid Token")
	}

	pair, err := h.tokens.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	if err := h.users.SetRefreshToken(user.ID, &pair.RefreshToken); err != nil {
		return nil, err
	}
	user.RefreshToken = &pair.RefreshToken

	return &LoginResponse{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
