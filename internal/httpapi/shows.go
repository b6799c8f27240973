package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"fyyur/shared/go/logging"
	"fyyur/shared/go/models"
)

type showRequest struct {
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

func (s *Server) handleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Msg("list shows")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not load shows"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Shows []models.Show `json:"shows"`
	}{Shows: shows})
}

func (s *Server) handleNewShowForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Form FormSpec `json:"form"`
	}{Form: showForm})
}

func (s *Server) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	var req showRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	created, err := s.shows.Create(r.Context(), req.ArtistID, req.VenueID, req.StartTime)
	if err != nil {
		logging.WithContext(r.Context()).Err(err).
			Int64("artist_id", req.ArtistID).
			Int64("venue_id", req.VenueID).
			Msg("create show")
		writeJSON(w, statusFor(err), flashResponse{
			Message: "An error occurred. Show could not be listed.",
		})
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		flashResponse
		Show *models.Show `json:"show"`
	}{
		flashResponse: flashResponse{Success: true, Message: "Show was successfully listed!"},
		Show:          created,
	})
}
