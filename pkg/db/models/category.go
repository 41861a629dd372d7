package models

// Category groups menu products under a bilingual display name.
type Category struct {
	ID       int64     `gorm:"column:id;primaryKey;autoIncrement"`
	NameAr   string    `gorm:"column:name_ar;type:varchar(200);not null"`
	NameEn   string    `gorm:"column:name_en;type:varchar(200);not null"`
	IsActive bool      `gorm:"column:is_active;not null"`
	Products []Product `gorm:"foreignKey:CategoryID"`
}
