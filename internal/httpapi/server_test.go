package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyyur/internal/store"
	"fyyur/shared/go/models"
)

type stubVenueService struct {
	areas    []models.AreaVenues
	areasErr error

	searchResults *models.VenueSearchResults
	searchErr     error
	lastTerm      string

	detail    *models.VenueDetail
	detailErr error

	created   *models.Venue
	createErr error

	updated   *models.Venue
	updateErr error

	deleteErr error
	deletedID int64
}

func (s *stubVenueService) List(ctx context.Context) ([]models.AreaVenues, error) {
	return s.areas, s.areasErr
}

func (s *stubVenueService) Search(ctx context.Context, term string) (*models.VenueSearchResults, error) {
	s.lastTerm = term
	return s.searchResults, s.searchErr
}

func (s *stubVenueService) Get(ctx context.Context, id int64) (*models.VenueDetail, error) {
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return s.detail, nil
}

func (s *stubVenueService) Create(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return venue, nil
}

func (s *stubVenueService) Update(ctx context.Context, id int64, venue *models.Venue) (*models.Venue, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	if s.updated != nil {
		return s.updated, nil
	}
	return venue, nil
}

func (s *stubVenueService) Delete(ctx context.Context, id int64) error {
	s.deletedID = id
	return s.deleteErr
}

type stubArtistService struct {
	artists   []models.ArtistSummary
	detail    *models.ArtistDetail
	detailErr error
	createErr error
}

func (s *stubArtistService) List(ctx context.Context) ([]models.ArtistSummary, error) {
	return s.artists, nil
}

func (s *stubArtistService) Search(ctx context.Context, term string) (*models.ArtistSearchResults, error) {
	return &models.ArtistSearchResults{}, nil
}

func (s *stubArtistService) Get(ctx context.Context, id int64) (*models.ArtistDetail, error) {
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return s.detail, nil
}

func (s *stubArtistService) Create(ctx context.Context, artist *models.Artist) (*models.Artist, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return artist, nil
}

func (s *stubArtistService) Update(ctx context.Context, id int64, artist *models.Artist) (*models.Artist, error) {
	return artist, nil
}

type stubShowService struct {
	shows     []models.Show
	created   *models.Show
	createErr error
}

func (s *stubShowService) List(ctx context.Context) ([]models.Show, error) {
	return s.shows, nil
}

func (s *stubShowService) Create(ctx context.Context, artistID, venueID int64, startTime time.Time) (*models.Show, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func newTestServer(v VenueService, a ArtistService, sh ShowService) http.Handler {
	if v == nil {
		v = &stubVenueService{}
	}
	if a == nil {
		a = &stubArtistService{}
	}
	if sh == nil {
		sh = &stubShowService{}
	}
	return New(v, a, sh).Routes()
}

func TestListVenuesGrouped(t *testing.T) {
	venues := &stubVenueService{
		areas: []models.AreaVenues{
			{City: "San Francisco", State: "CA", Venues: []models.VenueSummary{
				{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 0},
				{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
			}},
		},
	}
	handler := newTestServer(venues, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/venues", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Areas []models.AreaVenues `json:"areas"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Areas) != 1 || len(body.Areas[0].Venues) != 2 {
		t.Fatalf("unexpected areas: %+v", body.Areas)
	}
}

func TestSearchVenuesPassesTerm(t *testing.T) {
	venues := &stubVenueService{
		searchResults: &models.VenueSearchResults{
			Count: 1,
			Data:  []models.VenueSummary{{ID: 1, Name: "The Musical Hop"}},
		},
	}
	handler := newTestServer(venues, nil, nil)

	payload := bytes.NewBufferString(`{"search_term":"Hop"}`)
	req := httptest.NewRequest(http.MethodPost, "/venues/search", payload)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if venues.lastTerm != "Hop" {
		t.Fatalf("expected search term to reach the service, got %q", venues.lastTerm)
	}
}

func TestCreateVenueSuccessMessage(t *testing.T) {
	handler := newTestServer(&stubVenueService{}, nil, nil)

	payload := bytes.NewBufferString(`{"name":"The Musical Hop","city":"San Francisco","state":"CA","address":"1015 Folsom Street"}`)
	req := httptest.NewRequest(http.MethodPost, "/venues/create", payload)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.Message != "Venue The Musical Hop was successfully listed!" {
		t.Fatalf("unexpected flash: %+v", body)
	}
}

func TestCreateVenueDuplicateConflict(t *testing.T) {
	handler := newTestServer(&stubVenueService{createErr: store.ErrDuplicateVenue}, nil, nil)

	payload := bytes.NewBufferString(`{"name":"The Musical Hop","city":"San Francisco","state":"CA","address":"1015 Folsom Street"}`)
	req := httptest.NewRequest(http.MethodPost, "/venues/create", payload)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success || body.Message != "An error occurred. Venue The Musical Hop could not be listed." {
		t.Fatalf("unexpected flash: %+v", body)
	}
}

func TestDeleteVenueNotFound(t *testing.T) {
	handler := newTestServer(&stubVenueService{deleteErr: store.ErrVenueNotFound}, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/venues/42", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteVenueWithShowsConflict(t *testing.T) {
	handler := newTestServer(&stubVenueService{deleteErr: store.ErrVenueInUse}, nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/venues/1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestGetArtistDetail(t *testing.T) {
	artists := &stubArtistService{
		detail: &models.ArtistDetail{
			Artist:             models.Artist{ID: 4, Name: "Guns N Petals"},
			UpcomingShows:      []models.VenueAppearance{{VenueID: 1, VenueName: "The Musical Hop"}},
			UpcomingShowsCount: 1,
		},
	}
	handler := newTestServer(nil, artists, nil)

	req := httptest.NewRequest(http.MethodGet, "/artists/4", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body models.ArtistDetail
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Name != "Guns N Petals" || body.UpcomingShowsCount != 1 {
		t.Fatalf("unexpected detail: %+v", body)
	}
}

func TestGetArtistNotFound(t *testing.T) {
	handler := newTestServer(nil, &stubArtistService{detailErr: store.ErrArtistNotFound}, nil)

	req := httptest.NewRequest(http.MethodGet, "/artists/99", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCreateShowMissingArtist(t *testing.T) {
	handler := newTestServer(nil, nil, &stubShowService{createErr: store.ErrArtistNotFound})

	payload := bytes.NewBufferString(`{"artist_id":99,"venue_id":1,"start_time":"2035-04-01T20:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/shows/create", payload)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success || body.Message != "An error occurred. Show could not be listed." {
		t.Fatalf("unexpected flash: %+v", body)
	}
}

func TestCreateShowSuccessMessage(t *testing.T) {
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	shows := &stubShowService{
		created: &models.Show{
			ID:         7,
			VenueID:    1,
			ArtistID:   4,
			VenueName:  "The Musical Hop",
			ArtistName: "Guns N Petals",
			StartTime:  start,
		},
	}
	handler := newTestServer(nil, nil, shows)

	payload := bytes.NewBufferString(`{"artist_id":4,"venue_id":1,"start_time":"2035-04-01T20:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/shows/create", payload)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		Show    *models.Show `json:"show"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success || body.Message != "Show was successfully listed!" {
		t.Fatalf("unexpected flash: %+v", body)
	}
	if body.Show == nil || body.Show.ArtistName != "Guns N Petals" {
		t.Fatalf("unexpected show payload: %+v", body.Show)
	}
}

func TestVenueFormSpec(t *testing.T) {
	handler := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/venues/create", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Form FormSpec `json:"form"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Form.Entity != "venue" || len(body.Form.Fields) == 0 {
		t.Fatalf("unexpected form spec: %+v", body.Form)
	}
}

func TestUnknownPathIs404(t *testing.T) {
	handler := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON 404, got content type %q", ct)
	}
}

func TestInvalidVenueID(t *testing.T) {
	handler := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/venues/abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
