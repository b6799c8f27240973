package httpapi

// FormField describes one input of an entity form.
type FormField struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Choices  []string `json:"choices,omitempty"`
}

// FormSpec is the statically defined form for one entity: the fields a
// submission must or may carry, served on the create/edit form pages.
type FormSpec struct {
	Entity string      `json:"entity"`
	Fields []FormField `json:"fields"`
}

var stateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN",
	"MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

var genreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

var venueForm = FormSpec{
	Entity: "venue",
	Fields: []FormField{
		{Name: "name", Type: "text", Required: true},
		{Name: "city", Type: "text", Required: true},
		{Name: "state", Type: "select", Required: true, Choices: stateChoices},
		{Name: "address", Type: "text", Required: true},
		{Name: "phone", Type: "tel"},
		{Name: "image_link", Type: "url"},
		{Name: "genres", Type: "multiselect", Choices: genreChoices},
		{Name: "facebook_link", Type: "url"},
		{Name: "website", Type: "url"},
		{Name: "seeking_talent", Type: "checkbox"},
		{Name: "seeking_description", Type: "text"},
	},
}

var artistForm = FormSpec{
	Entity: "artist",
	Fields: []FormField{
		{Name: "name", Type: "text", Required: true},
		{Name: "city", Type: "text", Required: true},
		{Name: "state", Type: "select", Required: true, Choices: stateChoices},
		{Name: "phone", Type: "tel"},
		{Name: "image_link", Type: "url"},
		{Name: "genres", Type: "multiselect", Choices: genreChoices},
		{Name: "facebook_link", Type: "url"},
		{Name: "website", Type: "url"},
		{Name: "seeking_venue", Type: "checkbox"},
		{Name: "seeking_description", Type: "text"},
	},
}

var showForm = FormSpec{
	Entity: "show",
	Fields: []FormField{
		{Name: "artist_id", Type: "number", Required: true},
		{Name: "venue_id", Type: "number", Required: true},
		{Name: "start_time", Type: "datetime", Required: true},
	},
}
