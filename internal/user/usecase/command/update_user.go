package command

import (
	"github.com/inventoryops/warehouse-api/internal/user/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	"github.com/inventoryops/warehouse-api/pkg/auth"
)

// UpdateUserCommand is a partial user update. The role is immutable
// here; ChangeRoleCommand is the explicit administrative path.
type UpdateUserCommand struct {
	ID       uint
	Name     *string
	Email    *string
	Password *string
}

// UpdateUserHandler handles the update user command
type UpdateUserHandler struct {
	users domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(users domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{users: users}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	if cmd.Name != nil && *cmd.Name == "" {
		return nil, apperror.Validation("name cannot be empty")
	}
	if cmd.Email != nil && *cmd.Email == "" {
		return nil, apperror.Validation("email cannot be empty")
	}

	fields := map[string]interface{}{}
	if cmd.Name != nil {
		fields["name"] = *cmd.Name
	}
	if cmd.Email != nil {
		fields["email"] = *cmd.Email
	}
	if cmd.Password != nil {
		if *cmd.Password == "" {
			return nil, apperror.Validation("password cannot be empty")
		}
		hashed, err := auth.HashPassword(*cmd.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashed
	}

	if len(fields) > 0 {
		if err := h.users.UpdateFields(cmd.ID, fields); err != nil {
			return nil, err
		}
	}

	return h.users.FindByID(cmd.ID)
}
