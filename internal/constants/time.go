package constants

const (
	// DateFormat is the standard calendar date format used throughout the
	// application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is used when a full timestamp is shown to the user
	DateTimeFormat = "Jan 2, 2006 15:04"
)
