package store

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// isUpcoming reports whether a show starting at start counts as
// upcoming relative to now. A show starting exactly now is upcoming;
// the matching SQL predicates use start_time >= now.
func isUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// joinGenres flattens a genre list into the comma-joined column value.
func joinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

// splitGenres expands the comma-joined column value back into a list.
func splitGenres(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
