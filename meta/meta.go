// meta/meta.go
package meta

// BOARD_SIZE defines the number of playable rows and columns.
const BOARD_SIZE = 8

// DIFFICULTY defines the default minimax depth.
const DIFFICULTY = 3

// STALE_THRESHOLD defines how many turns without capture or promotion end the game.
const STALE_THRESHOLD = 40

// MAX_TURNS caps the number of turns of an engine game.
const MAX_TURNS = 300
