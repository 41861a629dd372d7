package products

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"github.com/saracafe/saracafe-backend/pkg/db/models"
	pkgerrors "github.com/saracafe/saracafe-backend/pkg/errors"
	"github.com/saracafe/saracafe-backend/pkg/storage/local"
)

// Service exposes product management for the menu.
type Service interface {
	List(ctx context.Context) ([]ProductDTO, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]ProductDTO, error)
	Get(ctx context.Context, id int64) (*ProductDTO, error)
	Create(ctx context.Context, req CreateProductRequest) (*ProductDTO, error)
	Update(ctx context.Context, id int64, req UpdateProductRequest) (*ProductDTO, error)
	Delete(ctx context.Context, id int64) error
}

type categoryChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type imageStore interface {
	Save(ctx context.Context, r io.Reader, originalFilename string) (string, error)
	Delete(ctx context.Context, relativePath string) bool
}

type service struct {
	repo       Repository
	categories categoryChecker
	images     imageStore
}

// ServiceParams bundles the dependencies required to build a product service.
type ServiceParams struct {
	Repo       Repository
	Categories categoryChecker
	Images     imageStore
}

// NewService constructs a product service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("product repository is required")
	}
	if params.Categories == nil {
		return nil, fmt.Errorf("category checker is required")
	}
	if params.Images == nil {
		return nil, fmt.Errorf("image store is required")
	}
	return &service{
		repo:       params.Repo,
		categories: params.Categories,
		images:     params.Images,
	}, nil
}

func (s *service) List(ctx context.Context) ([]ProductDTO, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return FromModels(list), nil
}

func (s *service) ListByCategory(ctx context.Context, categoryID int64) ([]ProductDTO, error) {
	ok, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check category")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
	}

	list, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products by category")
	}
	return FromModels(list), nil
}

func (s *service) Get(ctx context.Context, id int64) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}
	return FromModel(product), nil
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (*ProductDTO, error) {
	if err := s.requireCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		NameAr:        strings.TrimSpace(req.NameAr),
		NameEn:        strings.TrimSpace(req.NameEn),
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
		IsActive:      true,
		Price:         req.Price,
		Calories:      req.Calories,
		CategoryID:    req.CategoryID,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if req.Image != nil {
		url, err := s.saveImage(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		product.ImageURL = &url
	}

	if err := s.repo.Create(ctx, product); err != nil {
		if product.ImageURL != nil {
			s.images.Delete(ctx, *product.ImageURL)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create product")
	}

	created, err := s.repo.FindByID(ctx, product.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload product")
	}
	return FromModel(created), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateProductRequest) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}

	if req.CategoryID != nil {
		if err := s.requireCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.NameAr != nil {
		product.NameAr = strings.TrimSpace(*req.NameAr)
	}
	if req.NameEn != nil {
		product.NameEn = strings.TrimSpace(*req.NameEn)
	}
	if req.DescriptionAr != nil {
		product.DescriptionAr = req.DescriptionAr
	}
	if req.DescriptionEn != nil {
		product.DescriptionEn = req.DescriptionEn
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.Price != nil {
		product.Price = req.Price
	}
	if req.Calories != nil {
		product.Calories = req.Calories
	}

	previousImage := product.ImageURL
	if req.Image != nil {
		url, err := s.saveImage(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		product.ImageURL = &url
	}

	if err := s.repo.Update(ctx, product); err != nil {
		if req.Image != nil && product.ImageURL != nil {
			s.images.Delete(ctx, *product.ImageURL)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product")
	}

	if req.Image != nil && previousImage != nil {
		s.images.Delete(ctx, *previousImage)
	}

	updated, err := s.repo.FindByID(ctx, product.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload product")
	}
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup product")
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete product")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	if product.ImageURL != nil {
		s.images.Delete(ctx, *product.ImageURL)
	}
	return nil
}

func (s *service) requireCategory(ctx context.Context, categoryID int64) error {
	ok, err := s.categories.Exists(ctx, categoryID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check category")
	}
	if !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "category does not exist")
	}
	return nil
}

func (s *service) saveImage(ctx context.Context, upload *ImageUpload) (string, error) {
	url, err := s.images.Save(ctx, upload.Reader, upload.Filename)
	if err != nil {
		if errors.Is(err, local.ErrUnsupportedExtension) {
			return "", pkgerrors.New(pkgerrors.CodeValidation, "unsupported image file extension")
		}
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store image")
	}
	return url, nil
}
