package models

import "github.com/shopspring/decimal"

// Product is a single menu item owned by a category.
type Product struct {
	ID            int64            `gorm:"column:id;primaryKey;autoIncrement"`
	NameAr        string           `gorm:"column:name_ar;type:varchar(200);not null"`
	NameEn        string           `gorm:"column:name_en;type:varchar(200);not null"`
	DescriptionAr *string          `gorm:"column:description_ar"`
	DescriptionEn *string          `gorm:"column:description_en"`
	IsActive      bool             `gorm:"column:is_active;not null"`
	ImageURL      *string          `gorm:"column:image_url"`
	Price         *decimal.Decimal `gorm:"column:price;type:numeric(18,2)"`
	Calories      *string          `gorm:"column:calories;type:varchar(100)"`
	CategoryID    int64            `gorm:"column:category_id;not null"`
	Category      *Category        `gorm:"foreignKey:CategoryID"`
}
