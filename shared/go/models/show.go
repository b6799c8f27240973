package models

import "time"

// Show links an artist to a venue at a start time. The venue/artist
// name and image link are snapshots copied when the show is created;
// later edits to the venue or artist do not rewrite them.
type Show struct {
	ID              int64     `json:"id"`
	VenueID         int64     `json:"venue_id"`
	ArtistID        int64     `json:"artist_id"`
	VenueName       string    `json:"venue_name"`
	ArtistName      string    `json:"artist_name"`
	VenueImageLink  string    `json:"venue_image_link,omitempty"`
	ArtistImageLink string    `json:"artist_image_link,omitempty"`
	StartTime       time.Time `json:"start_time"`
	CreatedAt       time.Time `json:"created_at"`
}

// ArtistAppearance is one row of a venue's show history: which artist
// played (or will play) and when.
type ArtistAppearance struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link,omitempty"`
	StartTime       time.Time `json:"start_time"`
}

// VenueAppearance is one row of an artist's show history: where they
// played (or will play) and when.
type VenueAppearance struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link,omitempty"`
	StartTime      time.Time `json:"start_time"`
}
