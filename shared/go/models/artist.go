package models

import "time"

// Artist represents a performer looking to book shows at venues.
type Artist struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone,omitempty"`
	Genres             []string  `json:"genres"`
	ImageLink          string    `json:"image_link,omitempty"`
	FacebookLink       string    `json:"facebook_link,omitempty"`
	Website            string    `json:"website,omitempty"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ArtistSummary is the listing/search row for an artist.
type ArtistSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// ArtistSearchResults carries a search response for the artists page.
type ArtistSearchResults struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

// ArtistDetail is the artist page view model: the artist plus their
// shows partitioned into past and upcoming relative to the query instant.
type ArtistDetail struct {
	Artist
	PastShows          []VenueAppearance `json:"past_shows"`
	UpcomingShows      []VenueAppearance `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}
