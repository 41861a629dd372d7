package categories

import "github.com/saracafe/saracafe-backend/pkg/db/models"

// CategoryDTO is the transport shape for a menu category.
type CategoryDTO struct {
	ID       int64        `json:"id"`
	NameAr   string       `json:"name_ar"`
	NameEn   string       `json:"name_en"`
	IsActive bool         `json:"is_active"`
	Products []ProductRef `json:"products,omitempty"`
}

// ProductRef is the abbreviated product shape embedded in category listings.
type ProductRef struct {
	ID     int64  `json:"id"`
	NameAr string `json:"name_ar"`
	NameEn string `json:"name_en"`
}

// CreateCategoryRequest carries the fields accepted when creating a category.
type CreateCategoryRequest struct {
	NameAr   string `json:"name_ar" validate:"required,max=200"`
	NameEn   string `json:"name_en" validate:"required,max=200"`
	IsActive *bool  `json:"is_active"`
}

// UpdateCategoryRequest carries optional fields; nil fields keep their stored value.
type UpdateCategoryRequest struct {
	NameAr   *string `json:"name_ar" validate:"omitempty,max=200"`
	NameEn   *string `json:"name_en" validate:"omitempty,max=200"`
	IsActive *bool   `json:"is_active"`
}

func FromModel(c *models.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	refs := make([]ProductRef, 0, len(c.Products))
	for _, p := range c.Products {
		refs = append(refs, ProductRef{ID: p.ID, NameAr: p.NameAr, NameEn: p.NameEn})
	}
	return &CategoryDTO{
		ID:       c.ID,
		NameAr:   c.NameAr,
		NameEn:   c.NameEn,
		IsActive: c.IsActive,
		Products: refs,
	}
}

func FromModels(list []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
