package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saracafe/saracafe-backend/api/responses"
	"github.com/saracafe/saracafe-backend/api/validators"
	productsvc "github.com/saracafe/saracafe-backend/internal/products"
	"github.com/saracafe/saracafe-backend/pkg/config"
	pkgerrors "github.com/saracafe/saracafe-backend/pkg/errors"
	"github.com/saracafe/saracafe-backend/pkg/logger"
)

// ListProducts handles the public menu listing. An optional category_id query
// parameter narrows the listing to one category.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		if raw := r.URL.Query().Get("category_id"); raw != "" {
			categoryID, err := validators.PathID(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			list, err := svc.ListByCategory(r.Context(), categoryID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, list)
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ListProductsByCategory handles the public per-category menu listing. The
// category must exist.
func ListProductsByCategory(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		categoryID, err := validators.PathID(chi.URLParam(r, "categoryId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListByCategory(r.Context(), categoryID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// GetProduct handles fetching a single menu item.
func GetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.PathID(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// CreateProduct handles multipart product creation with an optional image.
func CreateProduct(svc productsvc.Service, media config.MediaConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		if err := r.ParseMultipartForm(media.MaxUploadBytes()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		req, closeImage, err := decodeCreateProductForm(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer closeImage()

		product, err := svc.Create(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// UpdateProduct handles multipart partial updates with optional image
// replacement.
func UpdateProduct(svc productsvc.Service, media config.MediaConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.PathID(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := r.ParseMultipartForm(media.MaxUploadBytes()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		req, closeImage, err := decodeUpdateProductForm(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer closeImage()

		product, err := svc.Update(r.Context(), id, req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// DeleteProduct handles menu item removal, including its stored image.
func DeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.PathID(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

func decodeCreateProductForm(r *http.Request) (productsvc.CreateProductRequest, func(), error) {
	noop := func() {}

	categoryID, err := validators.FormInt64(r, "category_id")
	if err != nil {
		return productsvc.CreateProductRequest{}, noop, err
	}
	isActive, err := validators.FormBoolPtr(r, "is_active")
	if err != nil {
		return productsvc.CreateProductRequest{}, noop, err
	}
	price, err := validators.FormDecimalPtr(r, "price")
	if err != nil {
		return productsvc.CreateProductRequest{}, noop, err
	}

	req := productsvc.CreateProductRequest{
		NameAr:        validators.FormString(r, "name_ar"),
		NameEn:        validators.FormString(r, "name_en"),
		DescriptionAr: validators.FormStringPtr(r, "description_ar"),
		DescriptionEn: validators.FormStringPtr(r, "description_en"),
		IsActive:      isActive,
		Price:         price,
		Calories:      validators.FormStringPtr(r, "calories"),
		CategoryID:    categoryID,
	}
	if err := validators.ValidateStruct(&req); err != nil {
		return productsvc.CreateProductRequest{}, noop, err
	}

	image, closeImage, err := formImage(r)
	if err != nil {
		return productsvc.CreateProductRequest{}, noop, err
	}
	req.Image = image
	return req, closeImage, nil
}

func decodeUpdateProductForm(r *http.Request) (productsvc.UpdateProductRequest, func(), error) {
	noop := func() {}

	categoryID, err := validators.FormInt64Ptr(r, "category_id")
	if err != nil {
		return productsvc.UpdateProductRequest{}, noop, err
	}
	isActive, err := validators.FormBoolPtr(r, "is_active")
	if err != nil {
		return productsvc.UpdateProductRequest{}, noop, err
	}
	price, err := validators.FormDecimalPtr(r, "price")
	if err != nil {
		return productsvc.UpdateProductRequest{}, noop, err
	}

	req := productsvc.UpdateProductRequest{
		NameAr:        validators.FormStringPtr(r, "name_ar"),
		NameEn:        validators.FormStringPtr(r, "name_en"),
		DescriptionAr: validators.FormStringPtr(r, "description_ar"),
		DescriptionEn: validators.FormStringPtr(r, "description_en"),
		IsActive:      isActive,
		Price:         price,
		Calories:      validators.FormStringPtr(r, "calories"),
		CategoryID:    categoryID,
	}
	if err := validators.ValidateStruct(&req); err != nil {
		return productsvc.UpdateProductRequest{}, noop, err
	}

	image, closeImage, err := formImage(r)
	if err != nil {
		return productsvc.UpdateProductRequest{}, noop, err
	}
	req.Image = image
	return req, closeImage, nil
}

// formImage extracts the optional "image" file part. The returned closer is
// always safe to call.
func formImage(r *http.Request) (*productsvc.ImageUpload, func(), error) {
	noop := func() {}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, noop, nil
		}
		return nil, noop, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid image upload")
	}

	upload := &productsvc.ImageUpload{
		Reader:   file,
		Filename: header.Filename,
	}
	return upload, func() { closeFormFile(file) }, nil
}

func closeFormFile(file multipart.File) {
	if file != nil {
		file.Close()
	}
}
