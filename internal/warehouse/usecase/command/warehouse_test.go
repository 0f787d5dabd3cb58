package command

import (
	"testing"

	"github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

type mockWarehouseRepo struct {
	warehouses map[uint]*domain.Warehouse
	nextID     uint
	err        error
}

func newMockWarehouseRepo() *mockWarehouseRepo {
	return &mockWarehouseRepo{warehouses: make(map[uint]*domain.Warehouse), nextID: 1}
}

func (m *mockWarehouseRepo) Create(warehouse *domain.Warehouse) error {
	if m.err != nil {
		return m.err
	}
	warehouse.ID = m.nextID
	m.nextID++
	cp := *warehouse
	m.warehouses[warehouse.ID] = &cp
	return nil
}

func (m *mockWarehouseRepo) FindByID(id uint) (*domain.Warehouse, error) {
	if m.err != nil {
		return nil, m.err
	}
	warehouse, ok := m.warehouses[id]
	if !ok {
		return nil, apperror.NotFound("warehouse not found")
	}
	cp := *warehouse
	return &cp, nil
}

func (m *mockWarehouseRepo) FindAll(limit, offset int) ([]domain.Warehouse, error) {
	var out []domain.Warehouse
	for _, warehouse := range m.warehouses {
		out = append(out, *warehouse)
	}
	return out, m.err
}

func (m *mockWarehouseRepo) Update(warehouse *domain.Warehouse) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.warehouses[warehouse.ID]; !ok {
		return apperror.NotFound("warehouse not found")
	}
	cp := *warehouse
	m.warehouses[warehouse.ID] = &cp
	return nil
}

func (m *mockWarehouseRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	if m.err != nil {
		return m.err
	}
	warehouse, ok := m.warehouses[id]
	if !ok {
		return apperror.NotFound("warehouse not found")
	}
	if v, ok := fields["name"]; ok {
		warehouse.Name = v.(string)
	}
	if v, ok := fields["location"]; ok {
		warehouse.Location = v.(string)
	}
	if v, ok := fields["manager_id"]; ok {
		warehouse.ManagerID = v.(uint)
	}
	return nil
}

func (m *mockWarehouseRepo) Delete(id uint) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.warehouses[id]; !ok {
		return apperror.NotFound("warehouse not found")
	}
	delete(m.warehouses, id)
	return nil
}

func ptrStr(s string) *string { return &s }
func ptrUint(u uint) *uint    { return &u }

func seedWarehouse(t *testing.T, repo *mockWarehouseRepo) *domain.Warehouse {
	t.Helper()
	warehouse, err := NewCreateWarehouseHandler(repo).Handle(CreateWarehouseCommand{
		Name:      "East",
		Location:  "Hamburg",
		ManagerID: 3,
	})
	if err != nil {
		t.Fatalf("seed warehouse: %v", err)
	}
	return warehouse
}

func TestCreateWarehouse(t *testing.T) {
	repo := newMockWarehouseRepo()
	handler := NewCreateWarehouseHandler(repo)

	warehouse, err := handler.Handle(CreateWarehouseCommand{Name: "East", Location: "Hamburg", ManagerID: 3})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if warehouse.ID == 0 {
		t.Error("expected assigned ID")
	}
	if warehouse.ManagerID != 3 {
		t.Errorf("ManagerID = %d, want 3", warehouse.ManagerID)
	}

	t.Run("missing name", func(t *testing.T) {
		_, err := handler.Handle(CreateWarehouseCommand{Location: "Hamburg"})
		if !apperror.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("missing location", func(t *testing.T) {
		_, err := handler.Handle(CreateWarehouseCommand{Name: "East"})
		if !apperror.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestUpdateWarehouse(t *testing.T) {
	repo := newMockWarehouseRepo()
	warehouse := seedWarehouse(t, repo)
	handler := NewUpdateWarehouseHandler(repo)

	updated, err := handler.Handle(UpdateWarehouseCommand{
		ID:        warehouse.ID,
		Name:      "West",
		Location:  "Cologne",
		ManagerID: 9,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if updated.Name != "West" || updated.Location != "Cologne" || updated.ManagerID != 9 {
		t.Errorf("updated = %+v", updated)
	}

	t.Run("unknown warehouse", func(t *testing.T) {
		_, err := handler.Handle(UpdateWarehouseCommand{ID: 999, Name: "X", Location: "Y"})
		if !apperror.IsNotFound(err) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestEditWarehouse_PartialUpdate(t *testing.T) {
	repo := newMockWarehouseRepo()
	warehouse := seedWarehouse(t, repo)
	handler := NewEditWarehouseHandler(repo)

	updated, err := handler.Handle(EditWarehouseCommand{ID: warehouse.ID, Location: ptrStr("Cologne")})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if updated.Location != "Cologne" {
		t.Errorf("Location = %q, want Cologne", updated.Location)
	}
	if updated.Name != "East" || updated.ManagerID != 3 {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestEditWarehouse_NoFields(t *testing.T) {
	repo := newMockWarehouseRepo()
	warehouse := seedWarehouse(t, repo)

	updated, err := NewEditWarehouseHandler(repo).Handle(EditWarehouseCommand{ID: warehouse.ID})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if updated.Name != "East" || updated.Location != "Hamburg" {
		t.Errorf("no-op edit changed fields: %+v", updated)
	}
}

func TestEditWarehouse_EmptyValues(t *testing.T) {
	repo := newMockWarehouseRepo()
	warehouse := seedWarehouse(t, repo)
	handler := NewEditWarehouseHandler(repo)

	if _, err := handler.Handle(EditWarehouseCommand{ID: warehouse.ID, Name: ptrStr("")}); !apperror.IsValidation(err) {
		t.Errorf("empty name: expected validation error, got %v", err)
	}
	if _, err := handler.Handle(EditWarehouseCommand{ID: warehouse.ID, Location: ptrStr("")}); !apperror.IsValidation(err) {
		t.Errorf("empty location: expected validation error, got %v", err)
	}
}

func TestEditWarehouse_ReassignManager(t *testing.T) {
	repo := newMockWarehouseRepo()
	warehouse := seedWarehouse(t, repo)

	updated, err := NewEditWarehouseHandler(repo).Handle(EditWarehouseCommand{ID: warehouse.ID, ManagerID: ptrUint(7)})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if updated.ManagerID != 7 {
		t.Errorf("ManagerID = %d, want 7", updated.ManagerID)
	}
}

func TestDeleteWarehouse(t *testing.T) {
	repo := newMockWarehouseRepo()
	warehouse := seedWarehouse(t, repo)
	handler := NewDeleteWarehouseHandler(repo)

	if err := handler.Handle(DeleteWarehouseCommand{ID: warehouse.ID}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if err := handler.Handle(DeleteWarehouseCommand{ID: warehouse.ID}); !apperror.IsNotFound(err) {
		t.Errorf("second delete: expected not found, got %v", err)
	}
	if err := handler.Handle(DeleteWarehouseCommand{ID: 0}); !apperror.IsValidation(err) {
		t.Errorf("zero id: expected validation error, got %v", err)
	}
}
