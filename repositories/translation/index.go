package TranslationRepository

import (
	"database/sql"
)

// ErrNoRows re-exported so handlers don't import database/sql directly.
var ErrNoRows = sql.ErrNoRows

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}
