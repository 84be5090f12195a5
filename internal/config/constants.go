package config

// Plan generation defaults
const (
	// DefaultCandidateLimit bounds corpus queries so scoring cost stays flat
	// regardless of corpus size.
	DefaultCandidateLimit = 50

	// DefaultTopPicks is how many top-scored candidates are eligible for the
	// randomized slot pick.
	DefaultTopPicks = 3

	// DefaultRecipeCacheSize is the LRU entry count for corpus query results.
	DefaultRecipeCacheSize = 256
)

// Database defaults
const (
	// DefaultDBMaxConns is the connection pool ceiling
	DefaultDBMaxConns = 25
)

// Abuse limit defaults
const (
	// DefaultRateLimitMaxRequests is the per-IP request allowance per window
	DefaultRateLimitMaxRequests = 1000

	// DefaultRateLimitWindowMinutes is the counting window length
	DefaultRateLimitWindowMinutes = 5
)
