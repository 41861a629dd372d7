package seed

import (
	"context"
	"fmt"

	"github.com/saracafe/saracafe-backend/internal/categories"
	"github.com/saracafe/saracafe-backend/internal/products"
	"github.com/saracafe/saracafe-backend/internal/users"
	"github.com/saracafe/saracafe-backend/pkg/config"
	"github.com/saracafe/saracafe-backend/pkg/db/models"
	"github.com/saracafe/saracafe-backend/pkg/logger"
	"github.com/saracafe/saracafe-backend/pkg/security"
)

// Seeder provisions the initial admin account and a starter menu. Every step
// is idempotent: existing rows are left untouched.
type Seeder struct {
	users      users.Repository
	categories categories.Repository
	products   products.Repository
	cfg        config.SeedConfig
	logg       *logger.Logger
}

// Params bundles the dependencies required to build a seeder.
type Params struct {
	Users      users.Repository
	Categories categories.Repository
	Products   products.Repository
	Config     config.SeedConfig
	Logger     *logger.Logger
}

// New constructs a seeder with the provided dependencies.
func New(params Params) (*Seeder, error) {
	if params.Users == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.Categories == nil {
		return nil, fmt.Errorf("category repository is required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	return &Seeder{
		users:      params.Users,
		categories: params.Categories,
		products:   params.Products,
		cfg:        params.Config,
		logg:       params.Logger,
	}, nil
}

// Run seeds the admin user and, when the catalog is empty, the starter menu.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return err
	}
	return s.seedMenu(ctx)
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := security.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	firstName, lastName := "Admin", "User"
	admin := &models.User{
		Username:     s.cfg.AdminUsername,
		Email:        s.cfg.AdminEmail,
		PasswordHash: hash,
		FirstName:    &firstName,
		LastName:     &lastName,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "username", admin.Username), "seeded admin user")
	}
	return nil
}

func (s *Seeder) seedMenu(ctx context.Context) error {
	existing, err := s.categories.List(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, entry := range starterMenu() {
		category := entry.category
		if err := s.categories.Create(ctx, &category); err != nil {
			return fmt.Errorf("create category %q: %w", category.NameEn, err)
		}
		for _, item := range entry.products {
			product := item
			product.CategoryID = category.ID
			if err := s.products.Create(ctx, &product); err != nil {
				return fmt.Errorf("create product %q: %w", product.NameEn, err)
			}
		}
	}
	if s.logg != nil {
		s.logg.Info(ctx, "seeded starter menu")
	}
	return nil
}

type menuEntry struct {
	category models.Category
	products []models.Product
}

func starterProduct(nameAr, nameEn, descAr, descEn string) models.Product {
	return models.Product{
		NameAr:        nameAr,
		NameEn:        nameEn,
		DescriptionAr: &descAr,
		DescriptionEn: &descEn,
		IsActive:      true,
	}
}

func starterMenu() []menuEntry {
	return []menuEntry{
		{
			category: models.Category{NameAr: "قهوة", NameEn: "Coffee", IsActive: true},
			products: []models.Product{
				starterProduct("إسبرسو", "Espresso", "قهوة إسبرسو إيطالية قوية", "Strong Italian espresso"),
				starterProduct("كابتشينو", "Cappuccino", "قهوة إسبرسو مع حليب رغوي", "Espresso with foamed milk"),
				starterProduct("لاتيه", "Latte", "قهوة إسبرسو مع حليب ساخن", "Espresso with steamed milk"),
				starterProduct("قهوة عربية", "Arabic Coffee", "قهوة عربية أصيلة", "Traditional Arabic coffee"),
			},
		},
		{
			category: models.Category{NameAr: "مشروبات ساخنة", NameEn: "Hot Beverages", IsActive: true},
			products: []models.Product{
				starterProduct("شاي أحمر", "Black Tea", "شاي أحمر ساخن", "Hot black tea"),
				starterProduct("شاي أخضر", "Green Tea", "شاي أخضر صحي", "Healthy green tea"),
				starterProduct("شاي أعشاب", "Herbal Tea", "شاي أعشاب مهدئ", "Calming herbal tea"),
				starterProduct("شوكولاتة ساخنة", "Hot Chocolate", "شوكولاتة ساخنة لذيذة", "Delicious hot chocolate"),
			},
		},
		{
			category: models.Category{NameAr: "مشروبات باردة", NameEn: "Cold Beverages", IsActive: true},
			products: []models.Product{
				starterProduct("عصير برتقال", "Orange Juice", "عصير برتقال طازج", "Fresh orange juice"),
				starterProduct("عصير تفاح", "Apple Juice", "عصير تفاح منعش", "Refreshing apple juice"),
				starterProduct("آيس كوفي", "Iced Coffee", "قهوة مثلجة منعشة", "Refreshing iced coffee"),
				starterProduct("ليموناضة", "Lemonade", "ليموناضة منعشة", "Refreshing lemonade"),
			},
		},
		{
			category: models.Category{NameAr: "حلويات", NameEn: "Desserts", IsActive: true},
			products: []models.Product{
				starterProduct("تشيز كيك", "Cheesecake", "تشيز كيك كريمي لذيذ", "Creamy delicious cheesecake"),
				starterProduct("براوني", "Brownie", "براوني بالشوكولاتة", "Chocolate brownie"),
				starterProduct("آيس كريم", "Ice Cream", "آيس كريم بنكهات متعددة", "Ice cream with multiple flavors"),
			},
		},
		{
			category: models.Category{NameAr: "وجبات خفيفة", NameEn: "Snacks", IsActive: true},
			products: []models.Product{
				starterProduct("ساندويتش دجاج", "Chicken Sandwich", "ساندويتش دجاج مشوي", "Grilled chicken sandwich"),
				starterProduct("ساندويتش جبنة", "Cheese Sandwich", "ساندويتش جبنة طبيعية", "Natural cheese sandwich"),
				starterProduct("كرواسون", "Croissant", "كرواسون فرنسي طازج", "Fresh French croissant"),
			},
		},
	}
}
