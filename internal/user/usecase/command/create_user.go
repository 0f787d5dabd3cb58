package command

import (
	"github.com/inventoryops/warehouse-api/internal/user/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	"github.com/inventoryops/warehouse-api/pkg/auth"
)

// CreateUserCommand registers a new user
type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// CreateUserResult carries the created user and its first session
type CreateUserResult struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// CreateUserHandler handles the create user command
type CreateUserHandler struct {
	users  domain.UserRepository
	tokens *auth.TokenManager
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(users domain.UserRepository, tokens *auth.TokenManager) *CreateUserHandler {
	return &CreateUserHandler{users: users, tokens: tokens}
}

// Handle executes the create user command. Registration opens the
// first session: a token pair is issued and the refresh token is
// persisted on the new user record.
func (h *CreateUserHandler) Handle(cmd CreateUserCommand) (*CreateUserResult, error) {
	if cmd.Name == "" {
		return nil, apperror.Validation("name is required")
	}
	if cmd.Email == "" {
		return nil, apperror.Validation("email is required")
	}
	if cmd.Password == "" {
		return nil, apperror.Validation("password is required")
	}

	role := cmd.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, apperror.Validation("invalid role: %s", cmd.Role)
	}

	hashed, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Password: hashed,
		Role:     role,
	}
	if err := h.users.Create(user); err != nil {
		return nil, err
	}

	pair, err := h.tokens.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	if err := h.users.SetRefreshToken(user.ID, &pair.RefreshToken); err != nil {
		return nil, err
	}
	user.RefreshToken = &pair.RefreshToken

	return &CreateUserResult{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}
