package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	productsvc "github.com/saracafe/saracafe-backend/internal/products"
	"github.com/saracafe/saracafe-backend/pkg/config"
	pkgerrors "github.com/saracafe/saracafe-backend/pkg/errors"
)

type stubProductService struct {
	productsvc.Service
	createReq  *productsvc.CreateProductRequest
	updateReq  *productsvc.UpdateProductRequest
	updateID   int64
	list       []productsvc.ProductDTO
	byCategory []productsvc.ProductDTO
	created    *productsvc.ProductDTO
	err        error
}

func (s *stubProductService) List(ctx context.Context) ([]productsvc.ProductDTO, error) {
	return s.list, s.err
}

func (s *stubProductService) ListByCategory(ctx context.Context, categoryID int64) ([]productsvc.ProductDTO, error) {
	return s.byCategory, s.err
}

func (s *stubProductService) Create(ctx context.Context, req productsvc.CreateProductRequest) (*productsvc.ProductDTO, error) {
	s.createReq = &req
	return s.created, s.err
}

func (s *stubProductService) Update(ctx context.Context, id int64, req productsvc.UpdateProductRequest) (*productsvc.ProductDTO, error) {
	s.updateID = id
	s.updateReq = &req
	return s.created, s.err
}

func testMediaConfig() config.MediaConfig {
	return config.MediaConfig{RootDir: "wwwroot", MaxUploadMB: 10}
}

func multipartBody(t *testing.T, fields map[string]string, imageName string, imageBytes []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			t.Fatalf("write field %s: %v", name, err)
		}
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := io.Copy(part, bytes.NewReader(imageBytes)); err != nil {
			t.Fatalf("copy image bytes: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestCreateProductParsesMultipartForm(t *testing.T) {
	svc := &stubProductService{created: &productsvc.ProductDTO{ID: 11, NameEn: "Iced Coffee"}}
	handler := CreateProduct(svc, testMediaConfig(), nil)

	body, contentType := multipartBody(t, map[string]string{
		"name_ar":     "قهوة مثلجة",
		"name_en":     "Iced Coffee",
		"price":       "12.50",
		"category_id": "2",
	}, "latte.png", []byte("png-bytes"))

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.createReq == nil {
		t.Fatal("service was not called")
	}
	if svc.createReq.NameEn != "Iced Coffee" || svc.createReq.CategoryID != 2 {
		t.Fatalf("unexpected request %+v", svc.createReq)
	}
	if svc.createReq.Price == nil || svc.createReq.Price.String() != "12.5" {
		t.Fatalf("unexpected price %v", svc.createReq.Price)
	}
	if svc.createReq.Image == nil || svc.createReq.Image.Filename != "latte.png" {
		t.Fatalf("expected image upload, got %+v", svc.createReq.Image)
	}
}

func TestCreateProductWithoutImage(t *testing.T) {
	svc := &stubProductService{created: &productsvc.ProductDTO{ID: 11}}
	handler := CreateProduct(svc, testMediaConfig(), nil)

	body, contentType := multipartBody(t, map[string]string{
		"name_ar":     "شاي",
		"name_en":     "Tea",
		"category_id": "2",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.createReq.Image != nil {
		t.Fatalf("expected no image upload, got %+v", svc.createReq.Image)
	}
}

func TestCreateProductRejectsMissingNames(t *testing.T) {
	svc := &stubProductService{}
	handler := CreateProduct(svc, testMediaConfig(), nil)

	body, contentType := multipartBody(t, map[string]string{
		"category_id": "2",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if svc.createReq != nil {
		t.Fatal("service must not be called on validation failure")
	}
}

func TestCreateProductRejectsBadPrice(t *testing.T) {
	handler := CreateProduct(&stubProductService{}, testMediaConfig(), nil)

	body, contentType := multipartBody(t, map[string]string{
		"name_ar":     "شاي",
		"name_en":     "Tea",
		"price":       "cheap",
		"category_id": "2",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/products", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestUpdateProductSendsOnlyProvidedFields(t *testing.T) {
	svc := &stubProductService{created: &productsvc.ProductDTO{ID: 5}}
	router := chi.NewRouter()
	router.Put("/api/products/{id}", UpdateProduct(svc, testMediaConfig(), nil))

	body, contentType := multipartBody(t, map[string]string{
		"name_en": "Green Tea",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPut, "/api/products/5", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.updateID != 5 {
		t.Fatalf("unexpected id %d", svc.updateID)
	}
	if svc.updateReq.NameEn == nil || *svc.updateReq.NameEn != "Green Tea" {
		t.Fatalf("unexpected name %v", svc.updateReq.NameEn)
	}
	if svc.updateReq.NameAr != nil || svc.updateReq.Price != nil || svc.updateReq.CategoryID != nil {
		t.Fatalf("absent fields must stay nil: %+v", svc.updateReq)
	}
}

func TestListProductsByCategoryQuery(t *testing.T) {
	svc := &stubProductService{
		list:       []productsvc.ProductDTO{{ID: 1}, {ID: 2}, {ID: 3}},
		byCategory: []productsvc.ProductDTO{{ID: 2, CategoryID: 7}},
	}
	handler := ListProducts(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/products?category_id=7", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []productsvc.ProductDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != 2 {
		t.Fatalf("expected category-filtered list, got %+v", envelope.Data)
	}
}

func TestListProductsByCategoryPath(t *testing.T) {
	svc := &stubProductService{byCategory: []productsvc.ProductDTO{{ID: 4, CategoryID: 3}}}
	router := chi.NewRouter()
	router.Get("/api/products/category/{categoryId}", ListProductsByCategory(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/products/category/3", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []productsvc.ProductDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].CategoryID != 3 {
		t.Fatalf("expected category listing, got %+v", envelope.Data)
	}
}

func TestListProductsByCategoryUnknownCategory(t *testing.T) {
	svc := &stubProductService{err: pkgerrors.New(pkgerrors.CodeNotFound, "category not found")}
	router := chi.NewRouter()
	router.Get("/api/products/category/{categoryId}", ListProductsByCategory(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/products/category/99", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := &stubProductService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	router := chi.NewRouter()
	router.Get("/api/products/{id}", GetProduct(&productServiceWithGet{svc}, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/products/42", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

type productServiceWithGet struct {
	*stubProductService
}

func (s *productServiceWithGet) Get(ctx context.Context, id int64) (*productsvc.ProductDTO, error) {
	return nil, s.err
}
