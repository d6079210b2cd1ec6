package domain

const (
	// DefaultPageLimit is used when a caller passes limit 0.
	DefaultPageLimit = 100
	// MaxPageLimit caps any requested limit.
	MaxPageLimit = 100
)

// Page is an offset/limit window over an ordered listing.
type Page struct {
	Skip  int64
	Limit int64
}
