package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fyyur/internal/store"
	"fyyur/shared/go/models"
)

// bootstrapDemoData seeds the directory with a handful of venues,
// artists and shows so a fresh instance has something to browse. It is
// a no-op once any venue exists.
func bootstrapDemoData(ctx context.Context, db *sql.DB, dataStore *store.Store) error {
	venuesTableExists, err := tableExists(ctx, db, "venues")
	if err != nil {
		return fmt.Errorf("check venues table: %w", err)
	}
	if !venuesTableExists {
		return nil
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM venues`).Scan(&count); err != nil {
		return fmt.Errorf("count venues: %w", err)
	}
	if count > 0 {
		return nil
	}

	seedVenues := []models.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			Website:            "https://www.themusicalhop.com",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
			Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			Website:      "https://www.theduelingpianos.com",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		},
	}

	venueIDs := make([]int64, 0, len(seedVenues))
	for i := range seedVenues {
		created, err := dataStore.CreateVenue(ctx, &seedVenues[i])
		if err != nil {
			return fmt.Errorf("seed venue %q: %w", seedVenues[i].Name, err)
		}
		venueIDs = append(venueIDs, created.ID)
	}

	seedArtists := []models.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             []string{"Rock n Roll"},
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			Website:            "https://www.gunsnpetalsband.com",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name:      "Matt Quevedo",
			City:      "New York",
			State:     "NY",
			Phone:     "300-400-5000",
			Genres:    []string{"Jazz"},
			ImageLink: "https://images.unsplash.com/photo-1495223153807-b916f75de8c5",
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			Genres:    []string{"Jazz", "Classical"},
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61",
		},
	}

	artistIDs := make([]int64, 0, len(seedArtists))
	for i := range seedArtists {
		created, err := dataStore.CreateArtist(ctx, &seedArtists[i])
		if err != nil {
			return fmt.Errorf("seed artist %q: %w", seedArtists[i].Name, err)
		}
		artistIDs = append(artistIDs, created.ID)
	}

	seedShows := []struct {
		artist, venue int
		start         time.Time
	}{
		{0, 0, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
		{1, 2, time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
		{2, 2, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
		{2, 2, time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
		{2, 2, time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
	}

	for _, sh := range seedShows {
		if _, err := dataStore.CreateShow(ctx, artistIDs[sh.artist], venueIDs[sh.venue], sh.start); err != nil {
			return fmt.Errorf("seed show: %w", err)
		}
	}

	return nil
}

func tableExists(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)
	`, name).Scan(&exists)
	return exists, err
}
