// meta/meta.go
package meta

// DEPTH defines the default search depth in plies.
const DEPTH = 4

// MAX_DEPTH caps the depth accepted from remote callers.
const MAX_DEPTH = 6

// Seed defines the default seed of the zobrist table.
const Seed uint64 = 0x5eed_d0c4

// MAX_MOVES ends a self-play game without a winner.
const MAX_MOVES = 300

// MAX_SEARCHES limits concurrent searches served by the HTTP server.
const MAX_SEARCHES = 4
