package command

import (
	userdomain "github.com/inventoryops/warehouse-api/internal/user/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	"github.com/inventoryops/warehouse-api/pkg/auth"
)

// ResetPasswordCommand sets a new password using a reset token
type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

// ResetPasswordHandler handles the reset password command
type ResetPasswordHandler struct {
	users  userdomain.UserRepository
	tokens *auth.TokenManager
}

// NewResetPasswordHandler creates a new reset password handler
func NewResetPasswordHandler(users userdomain.UserRepository, tokens *auth.TokenManager) *ResetPasswordHandler {
	return &ResetPasswordHandler{users: users, tokens: tokens}
}

// Handle executes the reset password command. The stored refresh token
// is left untouched: resetting a password does not terminate an
// existing session.
func (h *ResetPasswordHandler) Handle(cmd ResetPasswordCommand) error {
	if cmd.Token == "" {
		return apperror.Validation("token is required")
	}
	if cmd.NewPassword == "" {
		return apperror.Validation("password is required")
	}

	claims, err := h.tokens.ValidateResetToken(cmd.Token)
	if err != nil {
		return err
	}

	user, err := h.users.FindByID(claims.UserID)
	if err != nil {
		return err
	}

	hashed, err := auth.HashPassword(cmd.NewPassword)
	if err != nil {
		return err
	}

	return h.users.UpdateFields(user.ID, map[string]interface{}{"password": hashed})
}
