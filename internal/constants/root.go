package constants

// SessionState represents the current state of the TUI application
type SessionState int

// RiskLevel is the coarse severity classification attached to an analysis
type RiskLevel string

// SortKey selects the ordering applied to an entry list view
type SortKey string

const (
	AppName            = "moodlog"
	DefaultKeyringUser = "api-token"
	DefaultConfigDir   = "~/.config/moodlog"
	DefaultServerURL   = "http://localhost:8000"
	Version            = "v0.3.0"

	// TokenFileName is the plaintext fallback used when the OS keyring
	// is unavailable
	TokenFileName = "token"

	// CacheFileName is the local entry archive mirror
	CacheFileName = "cache.db"

	// Risk levels as they arrive on the wire (always lower-cased)
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskUnknown RiskLevel = "unknown"

	// Sort keys accepted by the archive views
	SortNewest   SortKey = "newest"
	SortOldest   SortKey = "oldest"
	SortMoodHigh SortKey = "mood-high"
	SortMoodLow  SortKey = "mood-low"

	// Mood score bounds (inclusive)
	MoodScoreMin = 1
	MoodScoreMax = 5
)

// TUI session states
const (
	StateLogin SessionState = iota
	StateArchive
	StateDetail
	StateDashboard
	StateCompose
	StateTechniques
	StateConfirmDelete
)

// SortKeys lists the accepted archive orderings in cycle order.
var SortKeys = []SortKey{SortNewest, SortOldest, SortMoodHigh, SortMoodLow}
