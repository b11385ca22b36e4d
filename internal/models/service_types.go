package models

// Service is the model for the 'services' table. Read-only through the
// public API.
type Service struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description string         `json:"description" db:"description"`
	Images      []ServiceImage `json:"images" db:"-"`
}

// ServiceImage is the model for the 'service_images' table.
type ServiceImage struct {
	ID        int64  `json:"id" db:"id"`
	ServiceID int64  `json:"serviceId" db:"service_id"`
	URL       string `json:"url" db:"url"`
}
