package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/render"
)

// ErrInvalidConfig is wrapped by every validation and parse failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment keys read by Load.
const (
	EnvRows      = "MAZE_ROWS"
	EnvCols      = "MAZE_COLS"
	EnvAlgorithm = "MAZE_ALGORITHM"
	EnvSeed      = "MAZE_SEED"
	EnvBraid     = "MAZE_BRAID"
	EnvStyle     = "MAZE_STYLE"
	EnvLogLevel  = "MAZE_LOG_LEVEL"
)

// DefaultEnvFile is the dotenv file consulted by Load.
const DefaultEnvFile = ".env"

// Config is the resolved mazegen configuration.
type Config struct {
	Rows      int     // grid rows
	Cols      int     // grid columns
	Algorithm string  // registered generator name
	Seed      int64   // RNG seed, 0 = default seed
	Braid     float64 // dead-end removal probability

	Root grid.Cell // distance root for -distances and -path

	Distances bool // overlay distances from Root
	Path      bool // overlay the path from Root to the south-east corner
	Longest   bool // overlay the longest path in the maze
	Heat      bool // tint overlaid cells

	Style    render.Style // frame glyphs
	LogLevel logrus.Level // CLI log level
}

// Default returns a 10×10 recursive backtracker maze in ASCII at info level.
func Default() Config {
	return Config{
		Rows:      10,
		Cols:      10,
		Algorithm: generator.AlgoRecursiveBacktracker,
		Seed:      0,
		Braid:     0,
		Style:     render.StyleASCII,
		LogLevel:  logrus.InfoLevel,
	}
}

// GeneratorOptions maps the configuration onto generator.Options.
func (c Config) GeneratorOptions() generator.Options {
	opts := generator.DefaultOptions()
	opts.Algorithm = c.Algorithm
	opts.Seed = c.Seed
	opts.Braid = c.Braid
	return opts
}

// Loader reads configuration from a dotenv file, an environment lookup and flags.
type Loader struct {
	// EnvFile is the dotenv path; empty disables the file.
	EnvFile string

	// Lookup reads one environment variable; os.LookupEnv when nil.
	Lookup func(key string) (string, bool)
}

// Load resolves the configuration for args (without the program name) using
// DefaultEnvFile and the process environment.
func Load(args []string) (Config, error) {
	return Loader{EnvFile: DefaultEnvFile, Lookup: os.LookupEnv}.Load(args)
}

// Load resolves the configuration for args. flag.ErrHelp is returned unwrapped
// when -h or -help is given.
func (l Loader) Load(args []string) (Config, error) {
	cfg := Default()

	env, err := l.environment()
	if err != nil {
		return cfg, err
	}
	if err = cfg.applyEnv(env); err != nil {
		return cfg, err
	}

	flags, style, level := newFlagSet(&cfg)
	flags.SetOutput(io.Discard)
	if err = flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if flags.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidConfig, flags.Args())
	}
	if err = cfg.setStyle(*style); err != nil {
		return cfg, err
	}
	if err = cfg.setLogLevel(*level); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Usage writes the flag summary to w.
func Usage(w io.Writer) {
	cfg := Default()
	flags, _, _ := newFlagSet(&cfg)
	flags.SetOutput(w)
	fmt.Fprintf(w, "Usage of %s:\n", flags.Name())
	flags.PrintDefaults()
}

// Validate checks ranges and names.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: rows and cols must be positive (got %dx%d)", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if _, err := generator.Lookup(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if math.IsNaN(c.Braid) || c.Braid < 0 || c.Braid > 1 {
		return fmt.Errorf("%w: braid must be in [0,1] (got %v)", ErrInvalidConfig, c.Braid)
	}
	if c.Root.Row < 0 || c.Root.Row >= c.Rows || c.Root.Col < 0 || c.Root.Col >= c.Cols {
		return fmt.Errorf("%w: root %v outside %dx%d grid", ErrInvalidConfig, c.Root, c.Rows, c.Cols)
	}
	return nil
}

// environment merges the dotenv file under the process environment.
func (l Loader) environment() (map[string]string, error) {
	env := make(map[string]string)
	if l.EnvFile != "" {
		fromFile, err := godotenv.Read(l.EnvFile)
		switch {
		case err == nil:
			env = fromFile
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, l.EnvFile, err)
		}
	}

	lookup := l.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range []string{EnvRows, EnvCols, EnvAlgorithm, EnvSeed, EnvBraid, EnvStyle, EnvLogLevel} {
		if v, ok := lookup(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

// applyEnv overrides c with the known keys present in env.
func (c *Config) applyEnv(env map[string]string) error {
	var err error
	if v, ok := env[EnvRows]; ok {
		if c.Rows, err = parseInt(EnvRows, v); err != nil {
			return err
		}
	}
	if v, ok := env[EnvCols]; ok {
		if c.Cols, err = parseInt(EnvCols, v); err != nil {
			return err
		}
	}
	if v, ok := env[EnvAlgorithm]; ok {
		c.Algorithm = v
	}
	if v, ok := env[EnvSeed]; ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvSeed, v)
		}
	}
	if v, ok := env[EnvBraid]; ok {
		if c.Braid, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvBraid, v)
		}
	}
	if v, ok := env[EnvStyle]; ok {
		if err = c.setStyle(v); err != nil {
			return err
		}
	}
	if v, ok := env[EnvLogLevel]; ok {
		if err = c.setLogLevel(v); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) setStyle(name string) error {
	s, err := render.ParseStyle(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	c.Style = s
	return nil
}

func (c *Config) setLogLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	c.LogLevel = lvl
	return nil
}

func parseInt(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
	}
	return n, nil
}

// newFlagSet binds flags to cfg, using its current values as defaults.
// Style and log level are returned as raw strings for later parsing.
func newFlagSet(cfg *Config) (*flag.FlagSet, *string, *string) {
	flags := flag.NewFlagSet("mazegen", flag.ContinueOnError)

	flags.IntVar(&cfg.Rows, "rows", cfg.Rows, "number of rows")
	flags.IntVar(&cfg.Cols, "cols", cfg.Cols, "number of columns")
	flags.StringVar(&cfg.Algorithm, "algorithm", cfg.Algorithm, fmt.Sprintf("generator, one of %v", generator.Algorithms()))
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = fixed default)")
	flags.Float64Var(&cfg.Braid, "braid", cfg.Braid, "probability of removing each dead end, in [0,1]")

	flags.IntVar(&cfg.Root.Row, "root-row", cfg.Root.Row, "row of the distance root")
	flags.IntVar(&cfg.Root.Col, "root-col", cfg.Root.Col, "column of the distance root")

	flags.BoolVar(&cfg.Distances, "distances", cfg.Distances, "show distances from the root")
	flags.BoolVar(&cfg.Path, "path", cfg.Path, "show the path from the root to the south-east corner")
	flags.BoolVar(&cfg.Longest, "longest", cfg.Longest, "show the longest path in the maze")
	flags.BoolVar(&cfg.Heat, "heat", cfg.Heat, "color cells by distance")

	style := flags.String("style", cfg.Style.String(), "frame style: ascii or box")
	level := flags.String("log-level", cfg.LogLevel.String(), "log level: panic, fatal, error, warn, info, debug, trace")

	return flags, style, level
}
