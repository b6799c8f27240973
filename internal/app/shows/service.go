package shows

import (
	"context"
	"time"

	"fyyur/shared/go/models"
)

// Store defines persistence operations for shows.
type Store interface {
	CreateShow(ctx context.Context, artistID, venueID int64, startTime time.Time) (*models.Show, error)
	ListShows(ctx context.Context) ([]models.Show, error)
}

// Service coordinates show listing and booking workflows.
type Service interface {
	List(ctx context.Context) ([]models.Show, error)
	Create(ctx context.Context, artistID, venueID int64, startTime time.Time) (*models.Show, error)
}

type service struct {
	store Store
}

// New constructs a shows Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.Show, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListShows(ctx)
}

// Create books an artist at a venue. The store rejects the booking if
// either side does not exist and snapshots their display fields.
func (s *service) Create(ctx context.Context, artistID, venueID int64, startTime time.Time) (*models.Show, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.CreateShow(ctx, artistID, venueID, startTime)
}
