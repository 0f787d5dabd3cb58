package query

import (
	"fmt"

	"github.com/inventoryops/warehouse-api/internal/user/domain"
)

// ListUsersQuery lists users with pagination
type ListUsersQuery struct {
	Limit  int
	Offset int
}

// ListUsersHandler handles the list users query
type ListUsersHandler struct {
	users domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(users domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{users: users}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(q ListUsersQuery) ([]domain.User, error) {
	if q.Limit == 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	users, err := h.users.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
