// Package store is the data access layer: a thin typed wrapper that
// translates each business operation into a single storage call. Handlers
// never build SQL themselves.
package store

import (
	"database/sql"
	"strings"
)

type Store struct {
	DB *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// placeholders builds the "?, ?, ?" fragment for an IN clause with n values.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

// int64Args widens an id slice into the []interface{} shape Query/Exec want.
func int64Args(ids []int64) []interface{} {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
