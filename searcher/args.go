package searcher

// Weights for the move heuristic

const MOVE_WEIGHT = 10
const CAPTURE_WEIGHT = 20

// Practical bound, the search is full-width
const MAX_DEPTH = 5
