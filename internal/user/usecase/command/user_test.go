package command

import (
	"testing"
	"time"

	"github.com/inventoryops/warehouse-api/internal/user/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	"github.com/inventoryops/warehouse-api/pkg/auth"
)

type mockUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
	err    error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (m *mockUserRepo) Create(user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return apperror.Validation("email already registered")
		}
	}
	user.ID = m.nextID
	m.nextID++
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) FindByID(id uint) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	cp := *user
	return &cp, nil
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (m *mockUserRepo) FindAll(limit, offset int) ([]domain.User, error) {
	var out []domain.User
	for _, user := range m.users {
		out = append(out, *user)
	}
	return out, m.err
}

func (m *mockUserRepo) Update(user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.ID]; !ok {
		return apperror.NotFound("user not found")
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	if m.err != nil {
		return m.err
	}
	user, ok := m.users[id]
	if !ok {
		return apperror.NotFound("user not found")
	}
	if v, ok := fields["name"]; ok {
		user.Name = v.(string)
	}
	if v, ok := fields["email"]; ok {
		user.Email = v.(string)
	}
	if v, ok := fields["password"]; ok {
		user.Password = v.(string)
	}
	if v, ok := fields["role"]; ok {
		user.Role = v.(string)
	}
	return nil
}

func (m *mockUserRepo) SetRefreshToken(id uint, token *string) error {
	user, ok := m.users[id]
	if !ok {
		return apperror.NotFound("user not found")
	}
	user.RefreshToken = token
	return nil
}

func (m *mockUserRepo) Delete(id uint) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[id]; !ok {
		return apperror.NotFound("user not found")
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) Count() (int64, error) {
	return int64(len(m.users)), m.err
}

func newTestTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour, time.Hour)
}

func ptrStr(s string) *string { return &s }

func TestCreateUser(t *testing.T) {
	users := newMockUserRepo()
	handler := NewCreateUserHandler(users, newTestTokenManager())

	result, err := handler.Handle(CreateUserCommand{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if result.User.ID == 0 {
		t.Error("expected assigned ID")
	}
	if result.User.Role != domain.RoleUser {
		t.Errorf("Role = %q, want %q", result.User.Role, domain.RoleUser)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("expected a token pair on registration")
	}
	if result.User.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
	if !auth.CheckPassword(result.User.Password, "secret123") {
		t.Error("stored hash does not match password")
	}

	stored, err := users.FindByID(result.User.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if stored.RefreshToken == nil || *stored.RefreshToken != result.RefreshToken {
		t.Error("refresh token not persisted on the user record")
	}
}

func TestCreateUser_Validation(t *testing.T) {
	handler := NewCreateUserHandler(newMockUserRepo(), newTestTokenManager())

	cases := []struct {
		name string
		cmd  CreateUserCommand
	}{
		{"missing name", CreateUserCommand{Email: "a@b.c", Password: "x"}},
		{"missing email", CreateUserCommand{Name: "A", Password: "x"}},
		{"missing password", CreateUserCommand{Name: "A", Email: "a@b.c"}},
		{"invalid role", CreateUserCommand{Name: "A", Email: "a@b.c", Password: "x", Role: "SUPERUSER"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := handler.Handle(tc.cmd); !apperror.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	users := newMockUserRepo()
	handler := NewCreateUserHandler(users, newTestTokenManager())

	cmd := CreateUserCommand{Name: "Alice", Email: "alice@example.com", Password: "secret123"}
	if _, err := handler.Handle(cmd); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := handler.Handle(cmd); !apperror.IsValidation(err) {
		t.Errorf("expected validation error for duplicate email, got %v", err)
	}
}

func TestUpdateUser(t *testing.T) {
	users := newMockUserRepo()
	created, err := NewCreateUserHandler(users, newTestTokenManager()).Handle(CreateUserCommand{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	handler := NewUpdateUserHandler(users)

	t.Run("partial update", func(t *testing.T) {
		updated, err := handler.Handle(UpdateUserCommand{ID: created.User.ID, Name: ptrStr("Alice B")})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if updated.Name != "Alice B" {
			t.Errorf("Name = %q, want Alice B", updated.Name)
		}
		if updated.Email != "alice@example.com" {
			t.Errorf("email changed unexpectedly: %q", updated.Email)
		}
	})

	t.Run("password is rehashed", func(t *testing.T) {
		updated, err := handler.Handle(UpdateUserCommand{ID: created.User.ID, Password: ptrStr("newsecret")})
		if err != nil {
			t.Fatalf("Handle() error = %v", err)
		}
		if updated.Password == "newsecret" {
			t.Error("password stored in plaintext")
		}
		if !auth.CheckPassword(updated.Password, "newsecret") {
			t.Error("stored hash does not match new password")
		}
	})

	t.Run("empty values rejected", func(t *testing.T) {
		if _, err := handler.Handle(UpdateUserCommand{ID: created.User.ID, Email: ptrStr("")}); !apperror.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
		if _, err := handler.Handle(UpdateUserCommand{ID: created.User.ID, Password: ptrStr("")}); !apperror.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestChangeRole(t *testing.T) {
	users := newMockUserRepo()
	created, err := NewCreateUserHandler(users, newTestTokenManager()).Handle(CreateUserCommand{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	handler := NewChangeRoleHandler(users)

	updated, err := handler.Handle(ChangeRoleCommand{ID: created.User.ID, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Errorf("Role = %q, want %q", updated.Role, domain.RoleAdmin)
	}

	t.Run("invalid role", func(t *testing.T) {
		if _, err := handler.Handle(ChangeRoleCommand{ID: created.User.ID, Role: "ROOT"}); !apperror.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		if _, err := handler.Handle(ChangeRoleCommand{ID: 999, Role: domain.RoleAdmin}); !apperror.IsNotFound(err) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	users := newMockUserRepo()
	created, err := NewCreateUserHandler(users, newTestTokenManager()).Handle(CreateUserCommand{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	handler := NewDeleteUserHandler(users)

	if err := handler.Handle(DeleteUserCommand{ID: created.User.ID}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if err := handler.Handle(DeleteUserCommand{ID: created.User.ID}); !apperror.IsNotFound(err) {
		t.Errorf("second delete: expected not found, got %v", err)
	}
}
