// meta/meta.go
package meta

// GAMES_PER_MATCHUP defines the number of games played for each experiment matchup.
const GAMES_PER_MATCHUP = 20

// OPENING_MOVES defines the number of random plies each experiment game starts with.
const OPENING_MOVES = 4

// RANDOM_SEED defines the base seed of random agents and openings.
const RANDOM_SEED = 1

// OUTPUT_DIR defines where experiment results are written.
const OUTPUT_DIR = "experiments"
