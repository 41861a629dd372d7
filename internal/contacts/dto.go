package contacts

import (
	"time"

	"github.com/saracafe/saracafe-backend/pkg/db/models"
)

// ContactDTO is the transport shape for a contact form message.
type ContactDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

// CreateContactRequest carries a public contact form submission.
type CreateContactRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,max=50"`
	Message string  `json:"message" validate:"required,max=2000"`
}

func FromModel(c *models.Contact) *ContactDTO {
	if c == nil {
		return nil
	}
	return &ContactDTO{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
		IsRead:    c.IsRead,
	}
}

func FromModels(list []models.Contact) []ContactDTO {
	out := make([]ContactDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out
}
