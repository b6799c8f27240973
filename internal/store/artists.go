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
	// ErrArtistNotFound indicates the referenced artist does not exist.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrDuplicateArtist indicates a name or image link collision.
	ErrDuplicateArtist = errors.New("artist name or image link already in use")
	// ErrInvalidArtist indicates a required field is missing.
	ErrInvalidArtist = errors.New("artist name, city and state are required")
)

func validateArtist(a *models.Artist) error {
	a.Name = strings.TrimSpace(a.Name)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	if a.Name == "" || a.City == "" || a.State == "" {
		return ErrInvalidArtist
	}
	return nil
}

// CreateArtist adds a new artist listing.
func (s *Store) CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	if err := validateArtist(artist); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO artists (name, city, state, phone, genres, image_link,
		                     facebook_link, website, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone,
		joinGenres(artist.Genres), artist.ImageLink, artist.FacebookLink,
		artist.Website, artist.SeekingVenue, artist.SeekingDescription,
	).Scan(&artist.ID, &artist.CreatedAt, &artist.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateArtist
		}
		return nil, fmt.Errorf("insert artist: %w", err)
	}

	return artist, nil
}

// GetArtist retrieves a single artist by ID.
func (s *Store) GetArtist(ctx context.Context, id int64) (*models.Artist, error) {
	query := `
		SELECT id, name, city, state, phone, genres, image_link,
		       facebook_link, website, seeking_venue, seeking_description,
		       created_at, updated_at
		FROM artists
		WHERE id = $1
	`

	var (
		a      models.Artist
		genres string
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &genres, &a.ImageLink,
		&a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription,
		&a.CreatedAt, &a.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select artist: %w", err)
	}

	a.Genres = splitGenres(genres)
	return &a, nil
}

// UpdateArtist overwrites the mutable fields of an existing artist. If
// the id does not exist no field is written.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error) {
	if err := validateArtist(artist); err != nil {
		return nil, err
	}

	query := `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
		    image_link = $6, facebook_link = $7, website = $8,
		    seeking_venue = $9, seeking_description = $10,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
		RETURNING id, created_at, updated_at
	`

	var a models.Artist
	err := s.db.QueryRowContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone,
		joinGenres(artist.Genres), artist.ImageLink, artist.FacebookLink,
		artist.Website, artist.SeekingVenue, artist.SeekingDescription,
		id,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArtistNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateArtist
		}
		return nil, fmt.Errorf("update artist: %w", err)
	}

	updated := *artist
	updated.ID = a.ID
	updated.CreatedAt = a.CreatedAt
	updated.UpdatedAt = a.UpdatedAt
	return &updated, nil
}

// ListArtists returns every artist annotated with the number of shows
// starting at or after now, in name order.
func (s *Store) ListArtists(ctx context.Context, now time.Time) ([]models.ArtistSummary, error) {
	query := `
		SELECT a.id, a.name,
		       COUNT(s.id) FILTER (WHERE s.start_time >= $1) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		GROUP BY a.id, a.name
		ORDER BY a.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	var artists []models.ArtistSummary
	for rows.Next() {
		var summary models.ArtistSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

// SearchArtists performs a case-insensitive substring match against
// artist names. An empty term matches every artist.
func (s *Store) SearchArtists(ctx context.Context, term string, now time.Time) (*models.ArtistSearchResults, error) {
	query := `
		SELECT a.id, a.name,
		       COUNT(s.id) FILTER (WHERE s.start_time >= $2) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE '%' || $1 || '%'
		GROUP BY a.id, a.name
		ORDER BY a.name ASC
	`

	rows, err := s.db.QueryContext(ctx, query, term, now)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	results := &models.ArtistSearchResults{}
	for rows.Next() {
		var summary models.ArtistSummary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan artist match: %w", err)
		}
		results.Data = append(results.Data, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artist matches: %w", err)
	}

	results.Count = len(results.Data)
	return results, nil
}
