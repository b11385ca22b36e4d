package store

import (
	"github.com/maisonbelle/maisonbelle-api/internal/models"
)

// ListServices returns every service with its images nested, using one bulk
// image query and in-memory assembly.
func (s *Store) ListServices() ([]*models.Service, error) {
	rows, err := s.DB.Query("SELECT id, name, description FROM services ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []*models.Service{}
	byID := make(map[int64]*models.Service)
	var ids []int64

	for rows.Next() {
		var sv models.Service
		if err := rows.Scan(&sv.ID, &sv.Name, &sv.Description); err != nil {
			return nil, err
		}
		sv.Images = []models.ServiceImage{}
		services = append(services, &sv)
		byID[sv.ID] = &sv
		ids = append(ids, sv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return services, nil
	}

	imgRows, err := s.DB.Query(
		"SELECT id, service_id, url FROM service_images WHERE service_id IN ("+placeholders(len(ids))+") ORDER BY id ASC",
		int64Args(ids)...)
	if err != nil {
		return nil, err
	}
	defer imgRows.Close()

	for imgRows.Next() {
		var img models.ServiceImage
		if err := imgRows.Scan(&img.ID, &img.ServiceID, &img.URL); err != nil {
			return nil, err
		}
		if sv, ok := byID[img.ServiceID]; ok {
			sv.Images = append(sv.Images, img)
		}
	}
	return services, imgRows.Err()
}
