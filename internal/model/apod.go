package model

import "time"

// Media types returned by the APOD API.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Apod is one day's Astronomy Picture of the Day. The NASA date string
// (YYYY-MM-DD) is the primary key; records accumulate as a local
// history and are never deleted. Favorite is the only field a user
// mutates directly.
type Apod struct {
	Date         string
	Title        string
	Explanation  string
	URL          string
	MediaType    string
	ThumbnailURL *string
	Copyright    *string
	HDURL        *string
	Favorite     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
