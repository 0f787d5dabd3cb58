package command

import (
	"github.com/inventoryops/warehouse-api/internal/user/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// DeleteUserCommand deletes a user by ID
type DeleteUserCommand struct {
	ID uint
}

// DeleteUserHandler handles the delete user command
type DeleteUserHandler struct {
	users domain.UserRepository
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(users domain.UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{users: users}
}

// Handle executes the delete user command
func (h *DeleteUserHandler) Handle(cmd DeleteUserCommand) error {
	if cmd.ID == 0 {
		return apperror.Validation("id is required")
	}
	return h.users.Delete(cmd.ID)
}
