package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fyyur/shared/go/models"
)

// ErrInvalidShow indicates a show submission without a start time.
var ErrInvalidShow = errors.New("show start time is required")

// CreateShow books an artist at a venue. Both must already exist; their
// name and image link are copied onto the show inside the same
// transaction so the snapshot matches what was looked up.
func (s *Store) CreateShow(ctx context.Context, artistID, venueID int64, startTime time.Time) (*models.Show, error) {
	if startTime.IsZero() {
		return nil, ErrInvalidShow
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	show := &models.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	}

	err = tx.QueryRowContext(ctx, `
		SELECT name, image_link
		FROM artists
		WHERE id = $1
	`, artistID).Scan(&show.ArtistName, &show.ArtistImageLink)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup artist: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		SELECT name, image_link
		FROM venues
		WHERE id = $1
	`, venueID).Scan(&show.VenueName, &show.VenueImageLink)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup venue: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO shows (venue_id, artist_id, venue_name, artist_name,
		                   venue_image_link, artist_image_link, start_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, show.VenueID, show.ArtistID, show.VenueName, show.ArtistName,
		show.VenueImageLink, show.ArtistImageLink, show.StartTime,
	).Scan(&show.ID, &show.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert show: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return show, nil
}

// ListShows returns every show with its denormalized display fields,
// most recent start time first.
func (s *Store) ListShows(ctx context.Context) ([]models.Show, error) {
	query := `
		SELECT id, venue_id, artist_id, venue_name, artist_name,
		       venue_image_link, artist_image_link, start_time, created_at
		FROM shows
		ORDER BY start_time DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	var shows []models.Show
	for rows.Next() {
		var sh models.Show
		err := rows.Scan(
			&sh.ID, &sh.VenueID, &sh.ArtistID, &sh.VenueName, &sh.ArtistName,
			&sh.VenueImageLink, &sh.ArtistImageLink, &sh.StartTime, &sh.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}

	return shows, nil
}

// VenueShows returns the shows booked at a venue, partitioned into past
// and upcoming. One query and one now value keep the split
// deterministic within an instant.
func (s *Store) VenueShows(ctx context.Context, venueID int64, now time.Time) (past, upcoming []models.ArtistAppearance, err error) {
	query := `
		SELECT artist_id, artist_name, artist_image_link, start_time
		FROM shows
		WHERE venue_id = $1
		ORDER BY start_time ASC
	`

	rows, err := s.db.QueryContext(ctx, query, venueID)
	if err != nil {
		return nil, nil, fmt.Errorf("select venue shows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a models.ArtistAppearance
		if err := rows.Scan(&a.ArtistID, &a.ArtistName, &a.ArtistImageLink, &a.StartTime); err != nil {
			return nil, nil, fmt.Errorf("scan venue show: %w", err)
		}
		if isUpcoming(a.StartTime, now) {
			upcoming = append(upcoming, a)
		} else {
			past = append(past, a)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate venue shows: %w", err)
	}

	return past, upcoming, nil
}

// ArtistShows returns the shows an artist is booked for, partitioned
// into past and upcoming.
func (s *Store) ArtistShows(ctx context.Context, artistID int64, now time.Time) (past, upcoming []models.VenueAppearance, err error) {
	query := `
		SELECT venue_id, venue_name, venue_image_link, start_time
		FROM shows
		WHERE artist_id = $1
		ORDER BY start_time ASC
	`

	rows, err := s.db.QueryContext(ctx, query, artistID)
	if err != nil {
		return nil, nil, fmt.Errorf("select artist shows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v models.VenueAppearance
		if err := rows.Scan(&v.VenueID, &v.VenueName, &v.VenueImageLink, &v.StartTime); err != nil {
			return nil, nil, fmt.Errorf("scan artist show: %w", err)
		}
		if isUpcoming(v.StartTime, now) {
			upcoming = append(upcoming, v)
		} else {
			past = append(past, v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate artist shows: %w", err)
	}

	return past, upcoming, nil
}
