package model

import "time"

// Notification kinds.
const (
	NotificationNewApod      = "new_apod"
	NotificationKeywordMatch = "keyword_match"
)

// Notification is an append-only record raised by the sync job, either
// for a newly fetched picture or for a watched-keyword match.
type Notification struct {
	ID        int64
	Kind      string
	ApodDate  string
	Keyword   *string
	Title     string
	Body      string
	CreatedAt time.Time
}
