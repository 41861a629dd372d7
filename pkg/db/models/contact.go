package models

import "time"

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(200);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);not null"`
	Phone     *string   `gorm:"column:phone;type:varchar(50)"`
	Message   string    `gorm:"column:message;type:varchar(2000);not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false"`
}
