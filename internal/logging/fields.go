package logging

// Shared field names so records stay queryable across components.
const (
	FieldComponent = "component"
	FieldEventType = "event_type"
	FieldURL       = "url"
	FieldCacheKey  = "cache_key"
	FieldPath      = "path"
	FieldLoadID    = "load_id"
	FieldSeason    = "season"
	FieldEpisode   = "episode"
	FieldLineCount = "line_count"
	FieldImpact    = "impact"
)
