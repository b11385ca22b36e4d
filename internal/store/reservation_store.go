package store

import (
	"github.com/maisonbelle/maisonbelle-api/internal/models"
)

// ListReservations returns every reservation newest first, each with its
// service joined in.
func (s *Store) ListReservations() ([]models.Reservation, error) {
	rows, err := s.DB.Query(`
		SELECT r.id, r.service_id, r.full_name, r.phone, r.validated, r.created_at,
		       sv.id, sv.name, sv.description
		FROM reservations r
		JOIN services sv ON sv.id = r.service_id
		ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		var r models.Reservation
		var sv models.Service
		if err := rows.Scan(&r.ID, &r.ServiceID, &r.FullName, &r.Phone,
			&r.Validated, &r.CreatedAt,
			&sv.ID, &sv.Name, &sv.Description); err != nil {
			return nil, err
		}
		r.Service = &sv
		reservations = append(reservations, r)
	}
	return reservations, rows.Err()
}

// CreateReservation inserts a reservation. Validated always starts false; an
// admin flips it later through SetReservationValidated.
func (s *Store) CreateReservation(r *models.Reservation) error {
	result, err := s.DB.Exec(`
		INSERT INTO reservations (service_id, full_name, phone, validated, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		r.ServiceID, r.FullName, r.Phone, r.Validated, r.CreatedAt)
	if err != nil {
		return err
	}

	r.ID, err = result.LastInsertId()
	return err
}

// DeleteReservations removes every reservation whose id is in ids. Missing
// ids are simply not matched; the operation is idempotent and reports no
// count back to the caller.
func (s *Store) DeleteReservations(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.DB.Exec(
		"DELETE FROM reservations WHERE id IN ("+placeholders(len(ids))+")",
		int64Args(ids)...)
	return err
}

// SetReservationValidated updates the validated flag and returns the updated
// row. Concurrent updates to the same row resolve last-writer-wins at the
// database.
func (s *Store) SetReservationValidated(id int64, validated bool) (*models.Reservation, error) {
	if _, err := s.DB.Exec(
		"UPDATE reservations SET validated = ? WHERE id = ?", validated, id); err != nil {
		return nil, err
	}

	var r models.Reservation
	err := s.DB.QueryRow(`
		SELECT id, service_id, full_name, phone, validated, created_at
		FROM reservations WHERE id = ?`, id,
	).Scan(&r.ID, &r.ServiceID, &r.FullName, &r.Phone, &r.Validated, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
