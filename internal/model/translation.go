package model

// Translation is a cached caption translation. (SourceText,
// TargetLanguage) is the natural key; a newer translation for the same
// pair replaces the old one. CreatedAtMs is epoch milliseconds and is
// the only freshness signal -- the cache never consults the server for
// invalidation.
type Translation struct {
	ID             int64
	SourceText     string
	TranslatedText string
	SourceLanguage string
	TargetLanguage string
	CreatedAtMs    int64
}
