package cli

import (
	"context"
	"os"

	"github.com/caprica-im/caprica/pkg/lexicon"
	"github.com/caprica-im/caprica/pkg/transcript"
	"github.com/caprica-im/caprica/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// config holds configuration values
type config struct {
	logLevel   string
	configPath string

	// Lexicon
	lexiconDriver  string
	lexiconPath    string
	fuzzyThreshold float64
}

// fileConfig is the optional YAML configuration file: persona transcripts and
// the lexicon source. Flags override whatever the file says.
type fileConfig struct {
	Personas map[string]string `yaml:"personas"`
	Lexicon  struct {
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
	} `yaml:"lexicon"`
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("CAPRICA_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to YAML configuration file",
			Sources:     cli.EnvVars("CAPRICA_CONFIG"),
			Destination: &cfg.configPath,
		},
	}
}

// lexiconFlags returns flags for the synonym source with destination config
func lexiconFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "lexicon-driver",
			Usage:       "Synonym source driver (file, sqlite, none)",
			Value:       "none",
			Sources:     cli.EnvVars("CAPRICA_LEXICON_DRIVER"),
			Destination: &cfg.lexiconDriver,
		},
		&cli.StringFlag{
			Name:        "lexicon",
			Aliases:     []string{"l"},
			Usage:       "Path to the synonym source (thesaurus file or SQLite database)",
			Sources:     cli.EnvVars("CAPRICA_LEXICON"),
			Destination: &cfg.lexiconPath,
		},
		&cli.FloatFlag{
			Name:        "fuzzy-threshold",
			Usage:       "Jaro-Winkler threshold for typo-tolerant matching (0 disables)",
			Value:       0,
			Sources:     cli.EnvVars("CAPRICA_FUZZY_THRESHOLD"),
			Destination: &cfg.fuzzyThreshold,
		},
	}
}

// setupContext installs a logger at the configured level on the context.
func (cfg *config) setupContext(ctx context.Context) context.Context {
	logger := logging.New(cfg.logLevel, os.Stderr)
	logging.SetDefault(logger)
	return logging.With(ctx, logger)
}

// loadFileConfig reads the YAML configuration file if one was given.
func (cfg *config) loadFileConfig() (*fileConfig, error) {
	fc := &fileConfig{}
	if cfg.configPath == "" {
		return fc, nil
	}

	raw, err := os.ReadFile(cfg.configPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", cfg.configPath))
	}
	if err := yaml.Unmarshal(raw, fc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", cfg.configPath))
	}

	return fc, nil
}

// resolveTranscript returns the transcript path for a persona: an explicit
// flag wins, then the config file's personas map.
func resolveTranscript(flagPath, persona string, fc *fileConfig) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if path, ok := fc.Personas[persona]; ok && path != "" {
		return path, nil
	}
	return "", goerr.New("no transcript for persona", goerr.V("persona", persona))
}

// newScorer builds the scorer with the configured synonym source. The
// returned closer releases the source (SQLite holds a database handle) and is
// a no-op for the others.
func (cfg *config) newScorer(fc *fileConfig) (*lexicon.Scorer, func(), error) {
	driver := cfg.lexiconDriver
	path := cfg.lexiconPath
	if path == "" && fc.Lexicon.Path != "" {
		driver = fc.Lexicon.Driver
		path = fc.Lexicon.Path
	}

	var (
		source lexicon.Source
		closer = func() {}
	)

	switch driver {
	case "", "none":
		source = lexicon.EmptySource{}

	case "file":
		if path == "" {
			return nil, nil, goerr.New("lexicon path is required for the file driver")
		}
		src, err := lexicon.NewFileSource(path)
		if err != nil {
			return nil, nil, err
		}
		source = src

	case "sqlite":
		if path == "" {
			return nil, nil, goerr.New("lexicon path is required for the sqlite driver")
		}
		src, err := lexicon.NewSQLiteSource(path)
		if err != nil {
			return nil, nil, err
		}
		source = src
		closer = func() { _ = src.Close() }

	default:
		return nil, nil, goerr.New("unknown lexicon driver", goerr.V("driver", driver))
	}

	var opts []lexicon.ScorerOption
	if cfg.fuzzyThreshold > 0 {
		opts = append(opts, lexicon.WithFuzzy(cfg.fuzzyThreshold))
	}

	return lexicon.NewScorer(lexicon.NewExpander(source), opts...), closer, nil
}

// loadStore loads one persona transcript.
func loadStore(path string) (*transcript.Store, error) {
	store, err := transcript.Load(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load transcript", goerr.V("path", path))
	}
	return store, nil
}
