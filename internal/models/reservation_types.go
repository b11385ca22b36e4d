package models

import "time"

// Reservation is the model for the 'reservations' table. A reservation is
// created by a customer request with Validated false; an admin later toggles
// Validated through the PATCH endpoint.
type Reservation struct {
	ID        int64     `json:"id" db:"id"`
	ServiceID int64     `json:"serviceId" db:"service_id"`
	FullName  string    `json:"fullName" db:"full_name"`
	Phone     string    `json:"phone" db:"phone"`
	Validated bool      `json:"validated" db:"validated"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Join (populated by the store on list)
	Service *Service `json:"service,omitempty" db:"-"`
}
