// Package config resolves the mazegen command-line configuration.
//
// Sources, lowest precedence first:
//
//  1. Default() values.
//  2. A dotenv file (".env" unless Loader.EnvFile says otherwise), read with godotenv.
//     A missing file is not an error.
//  3. The process environment.
//  4. Command-line flags.
//
// Environment keys:
//
//	MAZE_ROWS, MAZE_COLS     – grid size (positive integers)
//	MAZE_ALGORITHM           – generator name, see generator.Algorithms
//	MAZE_SEED                – RNG seed; 0 selects the fixed default seed
//	MAZE_BRAID               – dead-end removal probability in [0,1]
//	MAZE_STYLE               – "ascii" or "box"
//	MAZE_LOG_LEVEL           – logrus level name ("info", "debug", ...)
//
// Every validation failure wraps ErrInvalidConfig.
package config
