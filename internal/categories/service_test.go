package categories

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/saracafe/saracafe-backend/pkg/db/models"
	pkgerrors "github.com/saracafe/saracafe-backend/pkg/errors"
)

type stubCategoryRepo struct {
	Repository
	byID         map[int64]*models.Category
	productCount int64
	created      *models.Category
	updated      *models.Category
	deleted      bool
	deleteCalled bool
}

func (s *stubCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	category.ID = 4
	s.created = category
	return nil
}

func (s *stubCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	s.updated = category
	return nil
}

func (s *stubCategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	s.deleteCalled = true
	return s.deleted, nil
}

func (s *stubCategoryRepo) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *stubCategoryRepo) CountProducts(ctx context.Context, id int64) (int64, error) {
	return s.productCount, nil
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestServiceCreateDefaultsActive(t *testing.T) {
	repo := &stubCategoryRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), CreateCategoryRequest{
		NameAr: " مشروبات ساخنة ",
		NameEn: " Hot Drinks ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.NameAr != "مشروبات ساخنة" || dto.NameEn != "Hot Drinks" {
		t.Fatalf("expected trimmed names, got %q / %q", dto.NameAr, dto.NameEn)
	}
	if !dto.IsActive {
		t.Fatalf("new categories default to active")
	}
}

func TestServiceCreateHonorsExplicitInactive(t *testing.T) {
	svc, _ := NewService(&stubCategoryRepo{})

	dto, err := svc.Create(context.Background(), CreateCategoryRequest{
		NameAr:   "حلويات",
		NameEn:   "Desserts",
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.IsActive {
		t.Fatalf("expected inactive category")
	}
}

func TestServiceUpdateMergesOnlyProvidedFields(t *testing.T) {
	repo := &stubCategoryRepo{byID: map[int64]*models.Category{
		2: {ID: 2, NameAr: "مشروبات", NameEn: "Drinks", IsActive: true},
	}}
	svc, _ := NewService(repo)

	dto, err := svc.Update(context.Background(), 2, UpdateCategoryRequest{
		NameEn:   strPtr("Cold Drinks"),
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.NameAr != "مشروبات" {
		t.Fatalf("arabic name should be untouched, got %q", dto.NameAr)
	}
	if dto.NameEn != "Cold Drinks" {
		t.Fatalf("unexpected english name %q", dto.NameEn)
	}
	if dto.IsActive {
		t.Fatalf("expected category deactivated")
	}
}

func TestServiceDeleteBlockedWhileProductsRemain(t *testing.T) {
	repo := &stubCategoryRepo{productCount: 3}
	svc, _ := NewService(repo)

	err := svc.Delete(context.Background(), 2)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if repo.deleteCalled {
		t.Fatalf("delete must not reach the repository when products remain")
	}
}

func TestServiceDeleteMissingCategoryIsNotFound(t *testing.T) {
	svc, _ := NewService(&stubCategoryRepo{deleted: false})

	err := svc.Delete(context.Background(), 99)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}
