package products

import (
	"io"

	"github.com/shopspring/decimal"

	"github.com/saracafe/saracafe-backend/pkg/db/models"
)

// ProductDTO is the transport shape for a menu item.
type ProductDTO struct {
	ID             int64            `json:"id"`
	NameAr         string           `json:"name_ar"`
	NameEn         string           `json:"name_en"`
	DescriptionAr  *string          `json:"description_ar,omitempty"`
	DescriptionEn  *string          `json:"description_en,omitempty"`
	IsActive       bool             `json:"is_active"`
	ImageURL       *string          `json:"image_url,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Calories       *string          `json:"calories,omitempty"`
	CategoryID     int64            `json:"category_id"`
	CategoryNameAr *string          `json:"category_name_ar,omitempty"`
	CategoryNameEn *string          `json:"category_name_en,omitempty"`
}

// ImageUpload wraps an incoming product image stream.
type ImageUpload struct {
	Reader   io.Reader
	Filename string
}

// CreateProductRequest carries the fields accepted when creating a product.
type CreateProductRequest struct {
	NameAr        string           `validate:"required,max=200"`
	NameEn        string           `validate:"required,max=200"`
	DescriptionAr *string          `validate:"omitempty,max=2000"`
	DescriptionEn *string          `validate:"omitempty,max=2000"`
	IsActive      *bool
	Price         *decimal.Decimal
	Calories      *string          `validate:"omitempty,max=100"`
	CategoryID    int64            `validate:"required,gt=0"`
	Image         *ImageUpload
}

// UpdateProductRequest carries optional fields; nil fields keep their stored
// value. A non-nil Image replaces the stored image.
type UpdateProductRequest struct {
	NameAr        *string          `validate:"omitempty,max=200"`
	NameEn        *string          `validate:"omitempty,max=200"`
	DescriptionAr *string          `validate:"omitempty,max=2000"`
	DescriptionEn *string          `validate:"omitempty,max=2000"`
	IsActive      *bool
	Price         *decimal.Decimal
	Calories      *string          `validate:"omitempty,max=100"`
	CategoryID    *int64           `validate:"omitempty,gt=0"`
	Image         *ImageUpload
}

func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	dto := &ProductDTO{
		ID:            p.ID,
		NameAr:        p.NameAr,
		NameEn:        p.NameEn,
		DescriptionAr: p.DescriptionAr,
		DescriptionEn: p.DescriptionEn,
		IsActive:      p.IsActive,
		ImageURL:      p.ImageURL,
		Price:         p.Price,
		Calories:      p.Calories,
		CategoryID:    p.CategoryID,
	}
	if p.Category != nil {
		dto.CategoryNameAr = &p.Category.NameAr
		dto.CategoryNameEn = &p.Category.NameEn
	}
	return dto
}

func FromModels(list []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
