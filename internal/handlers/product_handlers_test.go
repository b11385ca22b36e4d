package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/maisonbelle/maisonbelle-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock store ---

type MockCatalogStore struct {
	Products  []*models.Product
	Summaries []models.ProductSummary
	Err       error

	searchCalled    bool
	lastSearchQuery string
	created         []*models.Product
	deletedIDs      []int64
}

func (m *MockCatalogStore) ListProducts() ([]*models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Products, nil
}

func (m *MockCatalogStore) SearchProducts(query string) ([]models.ProductSummary, error) {
	m.searchCalled = true
	m.lastSearchQuery = query
	if m.Err != nil {
		return nil, m.Err
	}
	matches := []models.ProductSummary{}
	for _, p := range m.Summaries {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (m *MockCatalogStore) CreateProduct(p *models.Product) error {
	if m.Err != nil {
		return m.Err
	}
	p.ID = int64(len(m.created) + 1)
	m.created = append(m.created, p)
	return nil
}

func (m *MockCatalogStore) UpdateProduct(p *models.Product) error { return m.Err }

func (m *MockCatalogStore) DeleteProduct(id int64) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return m.Err
}

func (m *MockCatalogStore) ListCategoryTree() ([]*models.Category, error) { return nil, m.Err }
func (m *MockCatalogStore) CreateCategory(cat *models.Category) error { return m.Err }
func (m *MockCatalogStore) DeleteCategory(id int64) error             { return m.Err }
func (m *MockCatalogStore) ListBrands() ([]models.Brand, error)       { return nil, m.Err }
func (m *MockCatalogStore) CreateBrand(b *models.Brand) error         { return m.Err }

func newCatalogRouter(store *MockCatalogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handlers{Catalog: store}
	r := gin.New()
	r.GET("/api/products", h.GetProducts)
	r.GET("/api/search", h.SearchProducts)
	r.POST("/api/admin/products", h.CreateProduct)
	return r
}

// --- Tests ---

func TestGetProducts(t *testing.T) {
	store := &MockCatalogStore{Products: []*models.Product{
		{ID: 1, Name: "Serum", Images: []string{}, Hashtags: []models.Hashtag{}, Reviews: []models.Review{}},
	}}
	router := newCatalogRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var resp []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Serum", resp[0].Name)
}

func TestGetProductsStorageError(t *testing.T) {
	store := &MockCatalogStore{Err: errors.New("connection refused")}
	router := newCatalogRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestSearchProducts(t *testing.T) {
	testCases := []struct {
		name           string
		url            string
		expectCall     bool
		expectedNames  []string
		expectedStatus int
	}{
		{
			name:           "empty query short-circuits without storage",
			url:            "/api/search?query=",
			expectCall:     false,
			expectedNames:  []string{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "whitespace query short-circuits without storage",
			url:            "/api/search?query=%20%20",
			expectCall:     false,
			expectedNames:  []string{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing query parameter behaves like empty",
			url:            "/api/search",
			expectCall:     false,
			expectedNames:  []string{},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "case-insensitive substring match",
			url:            "/api/search?query=SER",
			expectCall:     true,
			expectedNames:  []string{"Face Serum"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unmatched query is an empty success",
			url:            "/api/search?query=nothing",
			expectCall:     true,
			expectedNames:  []string{},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := &MockCatalogStore{Summaries: []models.ProductSummary{
				{ID: 1, Name: "Face Serum"},
				{ID: 2, Name: "Hand Cream"},
			}}
			router := newCatalogRouter(store)

			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, tc.expectCall, store.searchCalled)

			var resp struct {
				Products []models.ProductSummary `json:"products"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			names := []string{}
			for _, p := range resp.Products {
				names = append(names, p.Name)
			}
			assert.Equal(t, tc.expectedNames, names)
		})
	}
}

func TestCreateProductValidation(t *testing.T) {
	testCases := []struct {
		name          string
		body          string
		expectedError string
	}{
		{
			name:          "missing name",
			body:          `{"price":10}`,
			expectedError: "Name is required",
		},
		{
			name:          "negative price",
			body:          `{"name":"Serum","price":-1}`,
			expectedError: "Price must not be negative",
		},
		{
			name:          "negative stock",
			body:          `{"name":"Serum","price":10,"stock":-5}`,
			expectedError: "Stock must not be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := &MockCatalogStore{}
			router := newCatalogRouter(store)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedError, resp["error"])
			assert.Empty(t, store.created)
		})
	}
}

func TestCreateProductSlugsTheName(t *testing.T) {
	store := &MockCatalogStore{}
	router := newCatalogRouter(store)

	body := `{"name":"Crème de Nuit","price":42.5,"stock":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, "creme-de-nuit", store.created[0].Slug)
	assert.Equal(t, []string{}, store.created[0].Images)
}
