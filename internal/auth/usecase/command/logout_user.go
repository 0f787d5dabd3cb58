package command

import (
	userdomain "github.com/inventoryops/warehouse-api/internal/user/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// LogoutUserCommand ends a user's session
type LogoutUserCommand struct {
	UserID uint
}

// LogoutUserHandler handles the logout command
type LogoutUserHandler struct {
	users userdomain.UserRepository
}

// NewLogoutUserHandler creates a new logout handler
func NewLogoutUserHandler(users userdomain.UserRepository) *LogoutUserHandler {
	return &LogoutUserHandler{users: users}
}

// Handle executes the logout command. Clearing the stored refresh
// token is the entire session teardown; later refresh attempts with
// the old token fail the equality check.
func (h *LogoutUserHandler) Handle(cmd LogoutUserCommand) error {
	if cmd.UserID == 0 {
		return apperror.Validation("user id is required")
	}

	if _, err := h.users.FindByID(cmd.UserID); err != nil {
		return err
	}
	return h.users.SetRefreshToken(cmd.UserID, nil)
}
