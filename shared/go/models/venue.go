package models

import "time"

// Venue represents a performance space that can host shows.
type Venue struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone,omitempty"`
	ImageLink          string    `json:"image_link,omitempty"`
	FacebookLink       string    `json:"facebook_link,omitempty"`
	Website            string    `json:"website,omitempty"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description,omitempty"`
	Genres             []string  `json:"genres"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// VenueSummary is the listing/search row for a venue, annotated with
// the number of shows starting at or after the query instant.
type VenueSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// AreaVenues groups the venues of one (city, state) pair.
type AreaVenues struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueSearchResults carries a search response for the venues page.
type VenueSearchResults struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

// VenueDetail is the venue page view model: the venue plus its shows
// partitioned into past and upcoming relative to the query instant.
type VenueDetail struct {
	Venue
	PastShows          []ArtistAppearance `json:"past_shows"`
	UpcomingShows      []ArtistAppearance `json:"upcoming_shows"`
	PastShowsCount     int                `json:"past_shows_count"`
	UpcomingShowsCount int                `json:"upcoming_shows_count"`
}
