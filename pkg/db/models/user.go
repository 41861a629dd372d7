package models

import "time"

// User represents the canonical identity entity.
type User struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string     `gorm:"column:username;type:varchar(100);not null;uniqueIndex"`
	Email        string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	FirstName    *string    `gorm:"column:first_name;type:varchar(100)"`
	LastName     *string    `gorm:"column:last_name;type:varchar(100)"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    *time.Time `gorm:"column:updated_at"`
}
