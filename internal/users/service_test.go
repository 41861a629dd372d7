package users

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/saracafe/saracafe-backend/pkg/db/models"
	pkgerrors "github.com/saracafe/saracafe-backend/pkg/errors"
	"github.com/saracafe/saracafe-backend/pkg/security"
)

type stubUserRepo struct {
	Repository
	byID      map[int64]*models.User
	createErr error
	updateErr error
	created   *models.User
	updated   *models.User
	deleted   bool
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	user.ID = 7
	s.created = user
	return nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = user
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return s.deleted, nil
}

func (s *stubUserRepo) List(ctx context.Context) ([]models.User, error) {
	list := make([]models.User, 0, len(s.byID))
	for _, u := range s.byID {
		list = append(list, *u)
	}
	return list, nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func strPtr(s string) *string { return &s }

func TestServiceCreateHashesPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "  sara  ",
		Email:    "Sara@SaraCafe.com",
		Password: "Secret@1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.ID != 7 {
		t.Fatalf("expected assigned id, got %d", dto.ID)
	}
	if dto.Username != "sara" {
		t.Fatalf("expected trimmed username, got %q", dto.Username)
	}
	if dto.Email != "sara@saracafe.com" {
		t.Fatalf("expected lowercased email, got %q", dto.Email)
	}
	if repo.created.PasswordHash == "Secret@1" || repo.created.PasswordHash == "" {
		t.Fatalf("password must be stored hashed, got %q", repo.created.PasswordHash)
	}
	if !security.VerifyPassword("Secret@1", repo.created.PasswordHash) {
		t.Fatalf("stored hash does not verify the original password")
	}
}

func TestServiceCreateDuplicateIsConflict(t *testing.T) {
	repo := &stubUserRepo{createErr: gorm.ErrDuplicatedKey}
	svc, _ := NewService(repo)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "sara",
		Email:    "sara@saracafe.com",
		Password: "Secret@1",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestServiceUpdateMergesOnlyProvidedFields(t *testing.T) {
	existingHash, _ := security.HashPassword("OldPass1")
	repo := &stubUserRepo{byID: map[int64]*models.User{
		3: {
			ID:           3,
			Username:     "sara",
			Email:        "sara@saracafe.com",
			PasswordHash: existingHash,
			FirstName:    strPtr("Sara"),
		},
	}}
	svc, _ := NewService(repo)

	dto, err := svc.Update(context.Background(), 3, UpdateUserRequest{
		Email:    strPtr("new@saracafe.com"),
		LastName: strPtr("Kahil"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.Username != "sara" {
		t.Fatalf("username should be untouched, got %q", dto.Username)
	}
	if dto.Email != "new@saracafe.com" {
		t.Fatalf("unexpected email %q", dto.Email)
	}
	if dto.FirstName == nil || *dto.FirstName != "Sara" {
		t.Fatalf("first name should be untouched, got %v", dto.FirstName)
	}
	if dto.LastName == nil || *dto.LastName != "Kahil" {
		t.Fatalf("unexpected last name %v", dto.LastName)
	}
	if repo.updated.PasswordHash != existingHash {
		t.Fatalf("password hash must be untouched when password is absent")
	}
	if dto.UpdatedAt == nil {
		t.Fatalf("expected updated_at to be stamped")
	}
}

func TestServiceUpdateRehashesNewPassword(t *testing.T) {
	existingHash, _ := security.HashPassword("OldPass1")
	repo := &stubUserRepo{byID: map[int64]*models.User{
		3: {ID: 3, Username: "sara", Email: "sara@saracafe.com", PasswordHash: existingHash},
	}}
	svc, _ := NewService(repo)

	if _, err := svc.Update(context.Background(), 3, UpdateUserRequest{Password: strPtr("NewPass1")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !security.VerifyPassword("NewPass1", repo.updated.PasswordHash) {
		t.Fatalf("stored hash does not verify the new password")
	}
}

func TestServiceGetMissingUserIsNotFound(t *testing.T) {
	svc, _ := NewService(&stubUserRepo{byID: map[int64]*models.User{}})

	_, err := svc.Get(context.Background(), 99)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestServiceDeleteMissingUserIsNotFound(t *testing.T) {
	svc, _ := NewService(&stubUserRepo{deleted: false})

	err := svc.Delete(context.Background(), 99)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}
