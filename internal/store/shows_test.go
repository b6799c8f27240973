package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateShowSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	created := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM artists")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "image_link"}).
			AddRow("Guns N Petals", "https://example.com/gnp.jpg"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM venues")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "image_link"}).
			AddRow("The Musical Hop", "https://example.com/hop.jpg"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO shows")).
		WithArgs(int64(1), int64(4), "The Musical Hop", "Guns N Petals",
			"https://example.com/hop.jpg", "https://example.com/gnp.jpg", start).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))
	mock.ExpectCommit()

	show, err := s.CreateShow(context.Background(), 4, 1, start)
	if err != nil {
		t.Fatalf("CreateShow error: %v", err)
	}

	if show.ID != 7 {
		t.Fatalf("expected show ID 7, got %d", show.ID)
	}
	if show.VenueName != "The Musical Hop" || show.ArtistName != "Guns N Petals" {
		t.Fatalf("snapshot fields not copied: %+v", show)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateShowArtistMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM artists")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	if _, err := s.CreateShow(context.Background(), 99, 1, start); !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("expected ErrArtistNotFound, got %v", err)
	}

	// No INSERT was expected; the unmet-expectations check would fail
	// if one had been issued before the rollback.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateShowVenueMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM artists")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "image_link"}).
			AddRow("Guns N Petals", ""))
	mock.ExpectQuery(regexp.QuoteMeta("FROM venues")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	if _, err := s.CreateShow(context.Background(), 4, 99, start); !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
}

func TestCreateShowMissingStartTime(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	if _, err := s.CreateShow(context.Background(), 4, 1, time.Time{}); !errors.Is(err, ErrInvalidShow) {
		t.Fatalf("expected ErrInvalidShow, got %v", err)
	}
}

func TestVenueShowsPartition(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"artist_id", "artist_name", "artist_image_link", "start_time"}).
		AddRow(int64(4), "Guns N Petals", "", now.Add(-time.Hour)).
		AddRow(int64(5), "Matt Quevedo", "", now).
		AddRow(int64(6), "The Wild Sax Band", "", now.Add(time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE venue_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	past, upcoming, err := s.VenueShows(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("VenueShows error: %v", err)
	}

	if len(past) != 1 || past[0].ArtistName != "Guns N Petals" {
		t.Fatalf("unexpected past shows: %+v", past)
	}
	// A show starting exactly now counts as upcoming.
	if len(upcoming) != 2 || upcoming[0].ArtistName != "Matt Quevedo" {
		t.Fatalf("unexpected upcoming shows: %+v", upcoming)
	}
}

func TestArtistShowsPartition(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"venue_id", "venue_name", "venue_image_link", "start_time"}).
		AddRow(int64(1), "The Musical Hop", "", now.Add(-48*time.Hour)).
		AddRow(int64(3), "Park Square Live Music & Coffee", "", now.Add(24*time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE artist_id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(rows)

	past, upcoming, err := s.ArtistShows(context.Background(), 4, now)
	if err != nil {
		t.Fatalf("ArtistShows error: %v", err)
	}

	if len(past) != 1 || len(upcoming) != 1 {
		t.Fatalf("expected one past and one upcoming show, got %d/%d", len(past), len(upcoming))
	}
	if upcoming[0].VenueName != "Park Square Live Music & Coffee" {
		t.Fatalf("unexpected upcoming show: %+v", upcoming[0])
	}
}

func TestListShows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	s := New(db)

	created := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "venue_id", "artist_id", "venue_name", "artist_name",
		"venue_image_link", "artist_image_link", "start_time", "created_at",
	}).AddRow(int64(7), int64(1), int64(4), "The Musical Hop", "Guns N Petals",
		"", "", time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), created)

	mock.ExpectQuery(regexp.QuoteMeta("FROM shows")).
		WillReturnRows(rows)

	shows, err := s.ListShows(context.Background())
	if err != nil {
		t.Fatalf("ListShows error: %v", err)
	}
	if len(shows) != 1 || shows[0].VenueName != "The Musical Hop" {
		t.Fatalf("unexpected shows: %+v", shows)
	}
}
