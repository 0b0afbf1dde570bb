package constants

// Application identity
const (
	AppName    = "subsample"
	AppVersion = "1.0.0"
	AppAbout   = "Draw a uniform random subsample of epireads (one record per line) " +
		"and write them out in their original order."
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// I/O sizes
const (
	CountChunkSize  = 32 * 1024
	ReadBufferSize  = 64 * 1024
	WriteBufferSize = 64 * 1024
)

// Compressed file extensions
const (
	GzipExtension   = ".gz"
	SnappyExtension = ".sz"
)

// SeedStream is the second PCG word paired with the user or clock seed.
const SeedStream uint64 = 0x9e3779b97f4a7c15
