package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maisonbelle/maisonbelle-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock store ---

// MockReservationStore keeps reservations in memory, newest first, the same
// ordering the real store's query produces.
type MockReservationStore struct {
	Err error

	reservations   []models.Reservation
	lastDeletedIDs []int64
	nextID         int64
}

func (m *MockReservationStore) ListReservations() ([]models.Reservation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.reservations, nil
}

func (m *MockReservationStore) CreateReservation(r *models.Reservation) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	r.ID = m.nextID
	// prepend: newest first
	m.reservations = append([]models.Reservation{*r}, m.reservations...)
	return nil
}

func (m *MockReservationStore) DeleteReservations(ids []int64) error {
	m.lastDeletedIDs = ids
	if m.Err != nil {
		return m.Err
	}
	keep := []models.Reservation{}
	for _, r := range m.reservations {
		matched := false
		for _, id := range ids {
			if r.ID == id {
				matched = true
				break
			}
		}
		if !matched {
			keep = append(keep, r)
		}
	}
	m.reservations = keep
	return nil
}

func (m *MockReservationStore) SetReservationValidated(id int64, validated bool) (*models.Reservation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.reservations {
		if m.reservations[i].ID == id {
			m.reservations[i].Validated = validated
			r := m.reservations[i]
			return &r, nil
		}
	}
	return nil, fmt.Errorf("reservation %d not found", id)
}

func newReservationRouter(store *MockReservationStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handlers{Reservations: store}
	r := gin.New()
	r.GET("/api/reservation", h.GetReservations)
	r.POST("/api/reservation", h.CreateReservation)
	r.DELETE("/api/reservation", h.DeleteReservations)
	r.PATCH("/api/reservation", h.PatchReservation)
	return r
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// --- Tests ---

func TestCreateReservationRequiredFields(t *testing.T) {
	testCases := []struct {
		name          string
		body          string
		expectedError string
	}{
		{
			name:          "missing service id",
			body:          `{"fullName":"Jane Doe","phone":"0600000000"}`,
			expectedError: "Service ID is required",
		},
		{
			name:          "missing full name",
			body:          `{"serviceId":1,"phone":"0600000000"}`,
			expectedError: "Full name is required",
		},
		{
			name:          "missing phone",
			body:          `{"serviceId":1,"fullName":"Jane Doe"}`,
			expectedError: "Phone is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := &MockReservationStore{}
			router := newReservationRouter(store)

			rec := doJSON(router, http.MethodPost, "/api/reservation", tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.expectedError, resp["error"])
			assert.Empty(t, store.reservations)
		})
	}
}

func TestCreateReservationDefaultsUnvalidated(t *testing.T) {
	store := &MockReservationStore{}
	router := newReservationRouter(store)

	rec := doJSON(router, http.MethodPost, "/api/reservation",
		`{"serviceId":1,"fullName":"Jane Doe","phone":"0600000000"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Validated)
	assert.NotZero(t, resp.ID)
}

func TestDeleteReservations(t *testing.T) {
	t.Run("no ids is a bad request", func(t *testing.T) {
		store := &MockReservationStore{}
		router := newReservationRouter(store)

		rec := doJSON(router, http.MethodDelete, "/api/reservation", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, store.lastDeletedIDs)
	})

	t.Run("removes exactly the matching records", func(t *testing.T) {
		store := &MockReservationStore{reservations: []models.Reservation{
			{ID: 3}, {ID: 2}, {ID: 1},
		}, nextID: 3}
		router := newReservationRouter(store)

		rec := doJSON(router, http.MethodDelete, "/api/reservation?id=1&id=3", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []int64{1, 3}, store.lastDeletedIDs)
		require.Len(t, store.reservations, 1)
		assert.Equal(t, int64(2), store.reservations[0].ID)
	})

	t.Run("deleting an already-deleted id still answers 204", func(t *testing.T) {
		store := &MockReservationStore{}
		router := newReservationRouter(store)

		rec := doJSON(router, http.MethodDelete, "/api/reservation?id=99", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		store := &MockReservationStore{}
		router := newReservationRouter(store)

		rec := doJSON(router, http.MethodDelete, "/api/reservation?id=abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPatchReservation(t *testing.T) {
	t.Run("non-boolean validated is a bad request", func(t *testing.T) {
		store := &MockReservationStore{reservations: []models.Reservation{{ID: 1}}}
		router := newReservationRouter(store)

		rec := doJSON(router, http.MethodPatch, "/api/reservation", `{"id":1,"validated":"yes"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, store.reservations[0].Validated)
	})

	t.Run("absent validated is a bad request", func(t *testing.T) {
		store := &MockReservationStore{reservations: []models.Reservation{{ID: 1}}}
		router := newReservationRouter(store)

		rec := doJSON(router, http.MethodPatch, "/api/reservation", `{"id":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing id is a bad request", func(t *testing.T) {
		router := newReservationRouter(&MockReservationStore{})

		rec := doJSON(router, http.MethodPatch, "/api/reservation", `{"validated":true}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("updates and returns the record", func(t *testing.T) {
		store := &MockReservationStore{reservations: []models.Reservation{{ID: 1}}, nextID: 1}
		router := newReservationRouter(store)

		rec := doJSON(router, http.MethodPatch, "/api/reservation", `{"id":1,"validated":true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp models.Reservation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Validated)
	})
}

// TestReservationLifecycle walks the full customer/admin flow: book, have an
// admin validate, then confirm the booking lists first.
func TestReservationLifecycle(t *testing.T) {
	store := &MockReservationStore{reservations: []models.Reservation{
		{ID: 1, FullName: "Earlier Booking", CreatedAt: time.Now().Add(-time.Hour)},
	}, nextID: 1}
	router := newReservationRouter(store)

	// 1. Customer books.
	rec := doJSON(router, http.MethodPost, "/api/reservation",
		`{"serviceId":1,"fullName":"Jane Doe","phone":"0600000000"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.False(t, created.Validated)

	// 2. Admin validates.
	rec = doJSON(router, http.MethodPatch, "/api/reservation",
		fmt.Sprintf(`{"id":%d,"validated":true}`, created.ID))
	require.Equal(t, http.StatusOK, rec.Code)

	var patched models.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patched))
	assert.True(t, patched.Validated)

	// 3. The fresh booking lists first.
	rec = doJSON(router, http.MethodGet, "/api/reservation", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, "Jane Doe", listed[0].FullName)
}
