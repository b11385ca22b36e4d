package models

import "time"

// Review is the model for the 'reviews' table. Reviews are created by end
// users through the public API and are never updated or deleted there.
type Review struct {
	ID        int64     `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	Rating    int       `json:"rating" db:"rating"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"fullName" db:"full_name"`
	ProductID int64     `json:"productId" db:"product_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
