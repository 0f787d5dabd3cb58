package command

import (
	userdomain "github.com/inventoryops/warehouse-api/internal/user/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	"github.com/inventoryops/warehouse-api/pkg/auth"
)

// LoginUserCommand authenticates a user by email and password
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginResponse carries the user and its new session tokens
type LoginResponse struct {
	User         *userdomain.User `json:"user"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
}

// LoginUserHandler handles the login command
type LoginUserHandler struct {
	users  userdomain.UserRepository
	tokens *auth.TokenManager
}

// NewLoginUserHandler creates a new login handler
func NewLoginUserHandler(users userdomain.UserRepository, tokens *auth.TokenManager) *LoginUserHandler {
	return &LoginUserHandler{users: users, tokens: tokens}
}

// Handle executes the login command. Unknown account and wrong
// password fail identically so the response discloses neither.
// Issuing a new pair overwrites any stored refresh token: one active
// session per user.
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Email == "" {
		return nil, apperror.Validation("email is required")
	}
	if cmd.Password == "" {
		return nil, apperror.Validation("password is required")
	}

	user, err := h.users.FindByEmail(cmd.Email)
	if err != nil {
		return nil, apperror.Auth("invalid credentials")
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, apperror.Auth("invalid credentials")
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
