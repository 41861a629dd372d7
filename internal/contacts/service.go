package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/saracafe/saracafe-backend/pkg/db/models"
	pkgerrors "github.com/saracafe/saracafe-backend/pkg/errors"
)

// Service exposes the public contact form and the admin inbox. Opening a
// single message through Get marks it as read; List never does.
type Service interface {
	Create(ctx context.Context, req CreateContactRequest) (*ContactDTO, error)
	List(ctx context.Context) ([]ContactDTO, error)
	Get(ctx context.Context, id int64) (*ContactDTO, error)
	Delete(ctx context.Context, id int64) error
	UnreadCount(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
}

// NewService constructs a contact service with the provided repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contact repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, req CreateContactRequest) (*ContactDTO, error) {
	contact := &models.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   req.Phone,
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create contact")
	}
	return FromModel(contact), nil
}

// List returns the inbox newest-first with the stored read flags. Messages
// only flip to read when opened individually via Get.
func (s *service) List(ctx context.Context) ([]ContactDTO, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list contacts")
	}
	return FromModels(list), nil
}

func (s *service) Get(ctx context.Context, id int64) (*ContactDTO, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "contact not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup contact")
	}

	if !contact.IsRead {
		if err := s.repo.MarkRead(ctx, []int64{contact.ID}); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark contact read")
		}
		contact.IsRead = true
	}
	return FromModel(contact), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete contact")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "contact not found")
	}
	return nil
}

func (s *service) UnreadCount(ctx context.Context) (int64, error) {
	count, err := s.repo.CountUnread(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count unread contacts")
	}
	return count, nil
}
