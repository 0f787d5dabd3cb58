package repository

import (
	"testing"

	"github.com/inventoryops/warehouse-api/internal/user/domain"
)

var (
	_ domain.UserRepository = (*GormUserRepository)(nil)
	_ domain.UserRepository = (*GormUserRepositoryWithTracing)(nil)
)

func TestNewGormUserRepositoryWithTracing(t *testing.T) {
	r := NewGormUserRepositoryWithTracing(nil)
	if r.GormUserRepository == nil {
		t.Fatal("expected embedded repository to be set")
	}
}
