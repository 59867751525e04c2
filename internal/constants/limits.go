package constants

const (
	MaxSummaryLen = 500
	MaxAccountLen = 256
	MaxMetaKeyLen = 128
)

const (
	DefaultAsset        = "USD/2"
	DefaultHistoryLimit = 20
	DefaultCheckTimeout = "10s"
)

const (
	// Check status of a stored script
	CheckUnchecked = 0
	CheckPassed    = 1
	CheckFailed    = 2

	// Date Layout
	DateTimeFormat = "2006-01-02 15:04"
)
