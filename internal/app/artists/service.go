package artists

import (
	"context"
	"time"

	"fyyur/shared/go/models"
)

// Store defines persistence operations for artists.
type Store interface {
	CreateArtist(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	GetArtist(ctx context.Context, id int64) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
	ListArtists(ctx context.Context, now time.Time) ([]models.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string, now time.Time) (*models.ArtistSearchResults, error)
	ArtistShows(ctx context.Context, artistID int64, now time.Time) (past, upcoming []models.VenueAppearance, err error)
}

// Service coordinates artist listing, search and mutation workflows.
type Service interface {
	List(ctx context.Context) ([]models.ArtistSummary, error)
	Search(ctx context.Context, term string) (*models.ArtistSearchResults, error)
	Get(ctx context.Context, id int64) (*models.ArtistDetail, error)
	Create(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs an artists Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]models.ArtistSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListArtists(ctx, s.now())
}

func (s *service) Search(ctx context.Context, term string) (*models.ArtistSearchResults, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SearchArtists(ctx, term, s.now())
}

// Get assembles the artist page view model with past and upcoming shows
// split against a single query instant.
func (s *service) Get(ctx context.Context, id int64) (*models.ArtistDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artist, err := s.store.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming, err := s.store.ArtistShows(ctx, id, s.now())
	if err != nil {
		return nil, err
	}

	return &models.ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) Create(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateArtist(ctx, artist)
}

func (s *service) Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.UpdateArtist(ctx, id, artist)
}
