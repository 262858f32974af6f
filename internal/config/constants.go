package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./epistle.db"

	// DefaultStoreCapacityBytes caps the local key/value store at 5 MB,
	// matching a browser localStorage quota.
	DefaultStoreCapacityBytes = 5 * 1024 * 1024

	// DefaultAnchorOffsetDays places launch day 27 readings into the cycle.
	DefaultAnchorOffsetDays = 26

	// DefaultScriptureBaseURL is the canonical Korean text source.
	DefaultScriptureBaseURL = "http://holybible.or.kr/B_GAE/cgi/bibleftxt.php"
)
