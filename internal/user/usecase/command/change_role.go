package command

import (
	"github.com/inventoryops/warehouse-api/internal/user/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// ChangeRoleCommand changes a user's role. This is the only path that
// mutates the role, and it is admin-gated at the HTTP boundary.
type ChangeRoleCommand struct {
	ID   uint
	Role string
}

// ChangeRoleHandler handles the change role command
type ChangeRoleHandler struct {
	users domain.UserRepository
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(users domain.UserRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{users: users}
}

// Handle executes the change role command
func (h *ChangeRoleHandler) Handle(cmd ChangeRoleCommand) (*domain.User, error) {
	if !domain.ValidRole(cmd.Role) {
		return nil, apperror.Validation("invalid role: %s", cmd.Role)
	}

	if err := h.users.UpdateFields(cmd.ID, map[string]interface{}{"role": cmd.Role}); err != nil {
		return nil, err
	}
	return h.users.FindByID(cmd.ID)
}
