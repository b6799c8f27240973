package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fyyur/shared/go/logging"
	"fyyur/shared/go/models"
)

func (s *Server) handleListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.List(r.Context())
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Msg("list venues")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not load venues"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Areas []models.AreaVenues `json:"areas"`
	}{Areas: areas})
}

func (s *Server) handleSearchVenues(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	results, err := s.venues.Search(r.Context(), req.SearchTerm)
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Msg("search venues")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not search venues"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Results    *models.VenueSearchResults `json:"results"`
		SearchTerm string                     `json:"search_term"`
	}{Results: results, SearchTerm: req.SearchTerm})
}

func (s *Server) handleGetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	venue, err := s.venues.Get(r.Context(), id)
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Int64("venue_id", id).Msg("get venue")
		writeJSON(w, statusFor(err), errorResponse{Error: "venue not found"})
		return
	}

	writeJSON(w, http.StatusOK, venue)
}

func (s *Server) handleNewVenueForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Form FormSpec `json:"form"`
	}{Form: venueForm})
}

func (s *Server) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	var venue models.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	created, err := s.venues.Create(r.Context(), &venue)
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Str("venue", venue.Name).Msg("create venue")
		writeJSON(w, statusFor(err), flashResponse{
			Message: "An error occurred. Venue " + venue.Name + " could not be listed.",
		})
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		flashResponse
		Venue *models.Venue `json:"venue"`
	}{
		flashResponse: flashResponse{Success: true, Message: "Venue " + created.Name + " was successfully listed!"},
		Venue:         created,
	})
}

func (s *Server) handleEditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	detail, err := s.venues.Get(r.Context(), id)
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Int64("venue_id", id).Msg("edit venue form")
		writeJSON(w, statusFor(err), errorResponse{Error: "venue not found"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Form  FormSpec      `json:"form"`
		Venue *models.Venue `json:"venue"`
	}{Form: venueForm, Venue: &detail.Venue})
}

func (s *Server) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var venue models.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	updated, err := s.venues.Update(r.Context(), id, &venue)
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Int64("venue_id", id).Msg("update venue")
		writeJSON(w, statusFor(err), flashResponse{
			Message: "An error occurred. Venue " + venue.Name + " could not be edited.",
		})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		flashResponse
		Venue *models.Venue `json:"venue"`
	}{
		flashResponse: flashResponse{Success: true, Message: "Venue " + updated.Name + " was successfully edited!"},
		Venue:         updated,
	})
}

func (s *Server) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.venues.Delete(r.Context(), id); err != nil {
		logging.WithContext(r.Context()).Err(err).Int64("venue_id", id).Msg("delete venue")
		writeJSON(w, statusFor(err), flashResponse{
			Message: "An error occurred. Venue could not be deleted.",
		})
		return
	}

	writeJSON(w, http.StatusOK, flashResponse{Success: true, Message: "Venue was successfully deleted!"})
}

// pathID parses the {id} path segment, reporting a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}
