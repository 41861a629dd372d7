package contacts

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/saracafe/saracafe-backend/pkg/db/models"
	pkgerrors "github.com/saracafe/saracafe-backend/pkg/errors"
)

type stubContactRepo struct {
	Repository
	list    []models.Contact
	byID    map[int64]*models.Contact
	created *models.Contact
	marked  []int64
	deleted bool
}

func (s *stubContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	contact.ID = 9
	s.created = contact
	return nil
}

func (s *stubContactRepo) List(ctx context.Context) ([]models.Contact, error) {
	out := make([]models.Contact, len(s.list))
	copy(out, s.list)
	return out, nil
}

func (s *stubContactRepo) FindByID(ctx context.Context, id int64) (*models.Contact, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *stubContactRepo) MarkRead(ctx context.Context, ids []int64) error {
	s.marked = append(s.marked, ids...)
	return nil
}

func (s *stubContactRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return s.deleted, nil
}

func TestServiceCreateNormalizesFields(t *testing.T) {
	repo := &stubContactRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), CreateContactRequest{
		Name:    "  Sara  ",
		Email:   "Sara@Example.COM",
		Message: " hello there ",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.Name != "Sara" {
		t.Fatalf("expected trimmed name, got %q", dto.Name)
	}
	if dto.Email != "sara@example.com" {
		t.Fatalf("expected lowercased email, got %q", dto.Email)
	}
	if dto.Message != "hello there" {
		t.Fatalf("expected trimmed message, got %q", dto.Message)
	}
	if dto.IsRead {
		t.Fatalf("new submissions start unread")
	}
}

func TestServiceListKeepsStoredReadFlags(t *testing.T) {
	repo := &stubContactRepo{list: []models.Contact{
		{ID: 1, Name: "A", Email: "a@example.com", Message: "hi", IsRead: true},
		{ID: 2, Name: "B", Email: "b@example.com", Message: "hi", IsRead: false},
		{ID: 3, Name: "C", Email: "c@example.com", Message: "hi", IsRead: false},
	}}
	svc, _ := NewService(repo)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(repo.marked) != 0 {
		t.Fatalf("listing the inbox must not mark messages read, got %v", repo.marked)
	}
	if !list[0].IsRead || list[1].IsRead || list[2].IsRead {
		t.Fatalf("expected stored read flags preserved, got %+v", list)
	}
}

func TestServiceGetMarksSingleMessageRead(t *testing.T) {
	repo := &stubContactRepo{byID: map[int64]*models.Contact{
		4: {ID: 4, Name: "D", Email: "d@example.com", Message: "hi", IsRead: false},
	}}
	svc, _ := NewService(repo)

	dto, err := svc.Get(context.Background(), 4)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !dto.IsRead {
		t.Fatalf("expected message returned as read")
	}
	if len(repo.marked) != 1 || repo.marked[0] != 4 {
		t.Fatalf("expected id 4 marked read, got %v", repo.marked)
	}
}

func TestServiceGetAlreadyReadSkipsMark(t *testing.T) {
	repo := &stubContactRepo{byID: map[int64]*models.Contact{
		4: {ID: 4, Name: "D", Email: "d@example.com", Message: "hi", IsRead: true},
	}}
	svc, _ := NewService(repo)

	if _, err := svc.Get(context.Background(), 4); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(repo.marked) != 0 {
		t.Fatalf("already-read messages must not be marked again, got %v", repo.marked)
	}
}

func TestServiceDeleteMissingContactIsNotFound(t *testing.T) {
	svc, _ := NewService(&stubContactRepo{deleted: false})

	err := svc.Delete(context.Background(), 99)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}
