package command

import (
	"context"

	"github.com/inventoryops/warehouse-api/internal/alert"
	userdomain "github.com/inventoryops/warehouse-api/internal/user/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// Mock UserRepository
type mockUserRepo struct {
	users  map[uint]*userdomain.User
	nextID uint
}

func newMockUserRepo(users ...*userdomain.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[uint]*userdomain.User), nextID: 1}
	for _, u := range users {
		if u.ID == 0 {
			u.ID = m.nextID
		}
		if u.ID >= m.nextID {
			m.nextID = u.ID + 1
		}
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(user *userdomain.User) error {
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(id uint) (*userdomain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	cp := *user
	return &cp, nil
}

func (m *mockUserRepo) FindByEmail(email string) (*userdomain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("user not found")
}

func (m *mockUserRepo) FindAll(limit, offset int) ([]userdomain.User, error) {
	out := make([]userdomain.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepo) Update(user *userdomain.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return apperror.NotFound("user not found")
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	user, ok := m.users[id]
	if !ok {
		return apperror.NotFound("user not found")
	}
	if password, ok := fields["password"].(string); ok {
		user.Password = password
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
	if _, ok := m.users[id]; !ok {
		return apperror.NotFound("user not found")
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) Count() (int64, error) {
	return int64(len(m.users)), nil
}

// Mock mail Sender
type mockSender struct {
	messages []alert.Message
	err      error
}

func (m *mockSender) Send(_ context.Context, msg alert.Message) error {
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msg)
	return nil
}
