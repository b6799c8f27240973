package venues

import (
	"context"
	"time"

	"fyyur/shared/go/models"
)

// Store defines persistence operations for venues.
type Store interface {
	CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) error
	ListVenueAreas(ctx context.Context, now time.Time) ([]models.AreaVenues, error)
	SearchVenues(ctx context.Context, term string, now time.Time) (*models.VenueSearchResults, error)
	VenueShows(ctx context.Context, venueID int64, now time.Time) (past, upcoming []models.ArtistAppearance, err error)
}

// Service coordinates venue listing, search and mutation workflows.
type Service interface {
	List(ctx context.Context) ([]models.AreaVenues, error)
	Search(ctx context.Context, term string) (*models.VenueSearchResults, error)
	Get(ctx context.Context, id int64) (*models.VenueDetail, error)
	Create(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs a venues Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]models.AreaVenues, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListVenueAreas(ctx, s.now())
}

func (s *service) Search(ctx context.Context, term string) (*models.VenueSearchResults, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.SearchVenues(ctx, term, s.now())
}

// Get assembles the venue page view model: the venue plus its shows
// split into past and upcoming against a single query instant.
func (s *service) Get(ctx context.Context, id int64) (*models.VenueDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	venue, err := s.store.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming, err := s.store.VenueShows(ctx, id, s.now())
	if err != nil {
		return nil, err
	}

	return &models.VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *service) Create(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateVenue(ctx, venue)
}

func (s *service) Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.UpdateVenue(ctx, id, venue)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeleteVenue(ctx, id)
}
