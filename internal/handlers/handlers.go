package handlers

import (
	"github.com/maisonbelle/maisonbelle-api/internal/models"
	"github.com/maisonbelle/maisonbelle-api/internal/store"
)

// The handlers depend on narrow store interfaces rather than *store.Store so
// tests can swap in mocks without a database.

type CatalogStore interface {
	ListProducts() ([]*models.Product, error)
	SearchProducts(query string) ([]models.ProductSummary, error)
	CreateProduct(p *models.Product) error
	UpdateProduct(p *models.Product) error
	DeleteProduct(id int64) error
	ListCategoryTree() ([]*models.Category, error)
	CreateCategory(cat *models.Category) error
	DeleteCategory(id int64) error
	ListBrands() ([]models.Brand, error)
	CreateBrand(b *models.Brand) error
}

type ReviewStore interface {
	ListReviews(productID *int64) ([]models.Review, error)
	CreateReview(r *models.Review) error
}

type ReservationStore interface {
	ListReservations() ([]models.Reservation, error)
	CreateReservation(r *models.Reservation) error
	DeleteReservations(ids []int64) error
	SetReservationValidated(id int64, validated bool) (*models.Reservation, error)
}

type ServiceStore interface {
	ListServices() ([]*models.Service, error)
}

type UserStore interface {
	CreateUser(u *models.User) error
	GetUserByEmail(email string) (*models.User, error)
}

// TokenIssuer mints session tokens for the signin/signup endpoints.
type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Handlers holds every dependency the endpoint set needs.
type Handlers struct {
	Catalog      CatalogStore
	Reviews      ReviewStore
	Reservations ReservationStore
	Services     ServiceStore
	Users        UserStore
	Tokens       TokenIssuer
	UploadDir    string
}

// New wires the concrete store into every interface slot.
func New(s *store.Store, tokens TokenIssuer, uploadDir string) *Handlers {
	return &Handlers{
		Catalog:      s,
		Reviews:      s,
		Reservations: s,
		Services:     s,
		Users:        s,
		Tokens:       tokens,
		UploadDir:    uploadDir,
	}
}
