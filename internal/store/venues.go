package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"fyyur/shared/go/models"
)

var (
	// ErrVenueNotFound indicates the referenced venue does not exist.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrDuplicateVenue indicates a name or image link collision.
	ErrDuplicateVenue = errors.New("venue name or image link already in use")
	// ErrInvalidVenue indicates a required field is missing.
	ErrInvalidVenue = errors.New("venue name, city, state and address are required")
	// ErrVenueInUse rejects deletion of a venue with booked shows.
	ErrVenueInUse = errors.New("venue has shows booked")
)

func validateVenue(v *models.Venue) error {
	v.Name = strings.TrimSpace(v.Name)
	v.City = strings.TrimSpace(v.City)
	v.State = strings.TrimSpace(v.State)
	v.Address = strings.TrimSpace(v.Address)
	if v.Name == "" || v.City == "" || v.State == "" || v.Address == "" {
		return ErrInvalidVenue
	}
	return nil
}

// CreateVenue adds a new venue listing.
func (s *Store) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if err := validateVenue(venue); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO venues (name, city, state, address, phone, image_link,
		                    facebook_link, website, seeking_talent, seeking_description, genres)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		venue.ImageLink, venue.FacebookLink, venue.Website,
		venue.SeekingTalent, venue.SeekingDescription, joinGenres(venue.Genres),
	).Scan(&venue.ID, &venue.CreatedAt, &venue.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateVenue
		}
		return nil, fmt.Errorf("insert venue: %w", err)
	}

	return venue, nil
}

// GetVenue retrieves a single venue by ID.
func (s *Store) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	query := `
		SELECT id, name, city, state, address, phone, image_link,
		       facebook_link, website, seeking_talent, seeking_description, genres,
		       created_at, updated_at
		FROM venues
		WHERE id = $1
	`

	var (
		v      models.Venue
		genres string
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.Website, &v.SeekingTalent, &v.SeekingDescription,
		&genres, &v.CreatedAt, &v.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select venue: %w", err)
	}

	v.Genres = splitGenres(genres)
	return &v, nil
}

// UpdateVenue overwrites the mutable fields of an existing venue. If
// the id does not exist no field is written.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error) {
	if err := validateVenue(venue); err != nil {
		return nil, err
	}

	query := `
		UPDATE venues
		SET name = $1, city = $2, state = $3, address = $4, phone = $5,
		    image_link = $6, facebook_link = $7, website = $8,
		    seeking_talent = $9, seeking_description = $10, genres = $11,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $12
		RETURNING id, created_at, updated_at
	`

	var v models.Venue
	err := s.db.QueryRowContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone,
		venue.ImageLink, venue.FacebookLink, venue.Website,
		venue.SeekingTalent, venue.SeekingDescription, joinGenres(venue.Genres),
		id,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateVenue
		}
		return nil, fmt.Errorf("update venue: %w", err)
	}

	updated := *venue
	updated.ID = v.ID
	updated.CreatedAt = v.CreatedAt
	updated.UpdatedAt = v.UpdatedAt
	return &updated, nil
}

// DeleteVenue removes a venue. Venues with booked shows are protected;
// the shows table also carries a RESTRICT constraint so a racing show
// insert cannot orphan rows.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	var hasShows bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM shows WHERE venue_id = $1)
	`, id).Scan(&hasShows)
	if err != nil {
		return fmt.Errorf("check venue shows: %w", err)
	}
	if hasShows {
		return ErrVenueInUse
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	if rows == 0 {
		return ErrVenueNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// ListVenueAreas returns every venue grouped by its (city, state) pair,
// each annotated with the number of shows starting at or after now.
// Areas appear in city/state order; venues within an area in id order.
func (s *Store) ListVenueAreas(ctx context.Context, now time.Time) ([]models.AreaVenues, error) {
	query := `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(s.id) FILTER (WHERE s.start_time >= $1) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		GROUP BY v.id, v.name, v.city, v.state
		ORDER BY v.city ASC, v.state ASC, v.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("select venue areas: %w", err)
	}
	defer rows.Close()

	var areas []models.AreaVenues
	for rows.Next() {
		var (
			summary     models.VenueSummary
			city, state string
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &city, &state, &summary.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue area: %w", err)
		}

		n := len(areas)
		if n == 0 || areas[n-1].City != city || areas[n-1].State != state {
			areas = append(areas, models.AreaVenues{City: city, State: state})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venue areas: %w", err)
	}

	return areas, nil
}

// SearchVenues performs a case-insensitive substring match against
// venue names. An empty term matches every venue.
func (s *Store) SearchVenues(ctx context.Context, term string, now time.Time) (*models.VenueSearchResults, error) {
	query := `
		SELECT v.id, v.name,
		       COUNT(s.id) FILTER (WHERE s.start_time >= $2) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		WHERE v.name ILIKE '%' || $1 || '%'
		GROUP BY v.id, v.name
		ORDER BY v.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, term, now)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	results := &models.VenueSearchResults{}
	for rows.Next() {
		var summary models.VenueSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue match: %w", err)
		}
		results.Data = append(results.Data, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venue matches: %w", err)
	}

	results.Count = len(results.Data)
	return results, nil
}
