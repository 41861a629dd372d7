package contacts

import (
	"context"

	"gorm.io/gorm"

	"github.com/saracafe/saracafe-backend/pkg/db/models"
)

// Repository handles contact message persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]models.Contact, error)
	FindByID(ctx context.Context, id int64) (*models.Contact, error)
	MarkRead(ctx context.Context, ids []int64) error
	CountUnread(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a contact repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Contact{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) List(ctx context.Context) ([]models.Contact, error) {
	var list []models.Contact
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *repository) MarkRead(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("id IN ?", ids).
		Update("is_read", true).Error
}

func (r *repository) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("is_read = ?", false).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
