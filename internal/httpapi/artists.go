package httpapi

import (
	"encoding/json"
	"net/http"

	"fyyur/shared/go/logging"
	"fyyur/shared/go/models"
)

func (s *Server) handleListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Msg("list artists")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not load artists"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Artists []models.ArtistSummary `json:"artists"`
	}{Artists: artists})
}

func (s *Server) handleSearchArtists(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	results, err := s.artists.Search(r.Context(), req.SearchTerm)
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Msg("search artists")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not search artists"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Results    *models.ArtistSearchResults `json:"results"`
		SearchTerm string                      `json:"search_term"`
	}{Results: results, SearchTerm: req.SearchTerm})
}

func (s *Server) handleGetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	artist, err := s.artists.Get(r.Context(), id)
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Int64("artist_id", id).Msg("get artist")
		writeJSON(w, statusFor(err), errorResponse{Error: "artist not found"})
		return
	}

	writeJSON(w, http.StatusOK, artist)
}

func (s *Server) handleNewArtistForm(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Form FormSpec `json:"form"`
	}{Form: artistForm})
}

func (s *Server) handleCreateArtist(w http.ResponseWriter, r *http.Request) {
	var artist models.Artist
	if err := json.NewDecoder(r.Body).Decode(&artist); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	created, err := s.artists.Create(r.Context(), &artist)
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Str("artist", artist.Name).Msg("create artist")
		writeJSON(w, statusFor(err), flashResponse{
			Message: "An error occurred. Artist " + artist.Name + " could not be listed.",
		})
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		flashResponse
		Artist *models.Artist `json:"artist"`
	}{
		flashResponse: flashResponse{Success: true, Message: "Artist " + created.Name + " was successfully listed!"},
		Artist:        created,
	})
}

func (s *Server) handleEditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	detail, err := s.artists.Get(r.Context(), id)
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Int64("artist_id", id).Msg("edit artist form")
		writeJSON(w, statusFor(err), errorResponse{Error: "artist not found"})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Form   FormSpec       `json:"form"`
		Artist *models.Artist `json:"artist"`
	}{Form: artistForm, Artist: &detail.Artist})
}

func (s *Server) handleUpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var artist models.Artist
	if err := json.NewDecoder(r.Body).Decode(&artist); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	updated, err := s.artists.Update(r.Context(), id, &artist)
	if err != nil {
		logging.WithContext(r.Context()).Err(err).Int64("artist_id", id).Msg("update artist")
		writeJSON(w, statusFor(err), flashResponse{
			Message: "An error occurred. Artist " + artist.Name + " could not be edited.",
		})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		flashResponse
		Artist *models.Artist `json:"artist"`
	}{
		flashResponse: flashResponse{Success: true, Message: "Artist " + updated.Name + " was successfully edited!"},
		Artist:        updated,
	})
}
