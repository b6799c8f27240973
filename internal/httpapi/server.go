package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fyyur/internal/store"
	"fyyur/shared/go/models"
)

// VenueService coordinates venue listing, search and mutation workflows.
type VenueService interface {
	List(ctx context.Context) ([]models.AreaVenues, error)
	Search(ctx context.Context, term string) (*models.VenueSearchResults, error)
	Get(ctx context.Context, id int64) (*models.VenueDetail, error)
	Create(ctx context.Context, venue *models.Venue) (*models.Venue, error)
	Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

// ArtistService coordinates artist listing, search and mutation workflows.
type ArtistService interface {
	List(ctx context.Context) ([]models.ArtistSummary, error)
	Search(ctx context.Context, term string) (*models.ArtistSearchResults, error)
	Get(ctx context.Context, id int64) (*models.ArtistDetail, error)
	Create(ctx context.Context, artist *models.Artist) (*models.Artist, error)
	Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error)
}

// ShowService coordinates show listing and booking workflows.
type ShowService interface {
	List(ctx context.Context) ([]models.Show, error)
	Create(ctx context.Context, artistID, venueID int64, startTime time.Time) (*models.Show, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService
}

// New configures a Server with the given services.
func New(venues VenueService, artists ArtistService, shows ShowService) *Server {
	return &Server{
		venues:  venues,
		artists: artists,
		shows:   shows,
	}
}

// Routes exposes the HTTP handlers for the booking directory.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)

	// Venue routes
	mux.HandleFunc("GET /venues", s.handleListVenues)
	mux.HandleFunc("POST /venues/search", s.handleSearchVenues)
	mux.HandleFunc("GET /venues/create", s.handleNewVenueForm)
	mux.HandleFunc("POST /venues/create", s.handleCreateVenue)
	mux.HandleFunc("GET /venues/{id}", s.handleGetVenue)
	mux.HandleFunc("DELETE /venues/{id}", s.handleDeleteVenue)
	mux.HandleFunc("GET /venues/{id}/edit", s.handleEditVenueForm)
	mux.HandleFunc("POST /venues/{id}/edit", s.handleUpdateVenue)

	// Artist routes
	mux.HandleFunc("GET /artists", s.handleListArtists)
	mux.HandleFunc("POST /artists/search", s.handleSearchArtists)
	mux.HandleFunc("GET /artists/create", s.handleNewArtistForm)
	mux.HandleFunc("POST /artists/create", s.handleCreateArtist)
	mux.HandleFunc("GET /artists/{id}", s.handleGetArtist)
	mux.HandleFunc("GET /artists/{id}/edit", s.handleEditArtistForm)
	mux.HandleFunc("POST /artists/{id}/edit", s.handleUpdateArtist)

	// Show routes
	mux.HandleFunc("GET /shows", s.handleListShows)
	mux.HandleFunc("GET /shows/create", s.handleNewShowForm)
	mux.HandleFunc("POST /shows/create", s.handleCreateShow)

	// Everything else is a JSON 404.
	mux.HandleFunc("/", s.handleNotFound)

	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		App string `json:"app"`
	}{App: "fyyur"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "page not found"})
}

type errorResponse struct {
	Error string `json:"error"`
}

// flashResponse is the single pass/fail signal every mutation reports,
// mirroring the directory's flash-message convention.
type flashResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type searchRequest struct {
	SearchTerm string `json:"search_term"`
}

// statusFor maps store errors onto HTTP status codes. Anything
// unrecognized is a persistence failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrInvalidVenue),
		errors.Is(err, store.ErrInvalidArtist),
		errors.Is(err, store.ErrInvalidShow):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrVenueNotFound),
		errors.Is(err, store.ErrArtistNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrDuplicateVenue),
		errors.Is(err, store.ErrDuplicateArtist),
		errors.Is(err, store.ErrVenueInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
