package seqsplit

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/seqsplit/types"
)

// Default configuration values applied by Validate and DefaultConfig.
const (
	// DefaultTolerance is the acceptable deviation between a split's realized
	// and target fraction.
	DefaultTolerance = 0.05

	// DefaultSolveTimeout is the exact solver's wall-clock budget.
	DefaultSolveTimeout = 30 * time.Second
)

// Config is the configuration for a Splitter.
//
// All duration fields accept standard Go duration strings like "30s", "5m"
// when loaded from YAML.
type Config struct {
	// Splits is the ordered split specification. Fractions must lie in
	// (0, 1] and sum to 1.0; declaration order is the tie-break order for
	// solvers.
	Splits []types.SplitTarget `yaml:"splits"`

	// Tolerance is the acceptable absolute deviation between a split's
	// realized and target fraction. A proven-optimal assignment that still
	// exceeds the tolerance is reported as infeasible rather than returned
	// silently. Zero selects DefaultTolerance.
	Tolerance float64 `yaml:"tolerance"`

	// Objective selects how per-split deviations combine: "sum" (default)
	// or "max".
	Objective types.Objective `yaml:"objective"`

	// SolveTimeout is the exact solver's wall-clock budget. A zero budget is
	// honored literally: the exact solver times out immediately and the
	// greedy fallback produces the result. Use DefaultConfig for the 30s
	// default.
	SolveTimeout time.Duration `yaml:"solveTimeout"`
}

// DefaultConfig creates a configuration with default tolerance and solve
// timeout for the given splits.
//
// Parameters:
//   - splits: Ordered split targets
//
// Returns:
//   - *Config: Configuration with defaults applied
func DefaultConfig(splits ...types.SplitTarget) *Config {
	return &Config{
		Splits:       splits,
		Tolerance:    DefaultTolerance,
		Objective:    types.ObjectiveSum,
		SolveTimeout: DefaultSolveTimeout,
	}
}

// TrainTestConfig creates the canonical two-way train/test configuration.
//
// Parameters:
//   - testFraction: Desired fraction of total size in the test split
//
// Returns:
//   - *Config: Configuration with splits {train: 1-testFraction, test: testFraction}
//
// Example:
//
//	sp, err := seqsplit.New(seqsplit.TrainTestConfig(0.2))
func TrainTestConfig(testFraction float64) *Config {
	return DefaultConfig(
		types.SplitTarget{Name: "train", Fraction: 1 - testFraction},
		types.SplitTarget{Name: "test", Fraction: testFraction},
	)
}

// TrainTestValConfig creates the canonical three-way train/val/test
// configuration.
//
// Parameters:
//   - testFraction: Desired fraction of total size in the test split
//   - valFraction: Desired fraction of total size in the validation split
//
// Returns:
//   - *Config: Configuration with splits {train, val, test}
func TrainTestValConfig(testFraction, valFraction float64) *Config {
	return DefaultConfig(
		types.SplitTarget{Name: "train", Fraction: 1 - testFraction - valFraction},
		types.SplitTarget{Name: "val", Fraction: valFraction},
		types.SplitTarget{Name: "test", Fraction: testFraction},
	)
}

// LoadConfig reads a YAML configuration file.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Parsed configuration (not yet validated)
//   - error: File or YAML parsing error wrapped with context
//
// Example:
//
//	cfg, err := seqsplit.LoadConfig("splits.yaml")
//	if err != nil { /* handle */ }
//	sp, err := seqsplit.New(cfg)
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// UnmarshalYAML decodes a Config, accepting Go duration strings like "30s"
// for the solve timeout.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	raw := struct {
		Splits       []types.SplitTarget `yaml:"splits"`
		Tolerance    float64             `yaml:"tolerance"`
		Objective    types.Objective     `yaml:"objective"`
		SolveTimeout string              `yaml:"solveTimeout"`
	}{}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	c.Splits = raw.Splits
	c.Tolerance = raw.Tolerance
	c.Objective = raw.Objective
	c.SolveTimeout = 0
	if raw.SolveTimeout != "" {
		d, err := time.ParseDuration(raw.SolveTimeout)
		if err != nil {
			return fmt.Errorf("invalid solveTimeout: %w", err)
		}
		c.SolveTimeout = d
	}

	return nil
}

// Validate checks the configuration and fills defaults for zero values.
//
// Returns:
//   - error: ErrInvalidSplitSpec for an invalid split specification,
//     ErrInvalidConfig for invalid tolerance/objective/timeout
func (c *Config) Validate() error {
	if err := types.ValidateSplits(c.Splits); err != nil {
		return err
	}

	if c.Tolerance < 0 || c.Tolerance >= 1 {
		return fmt.Errorf("%w: tolerance %v outside [0, 1)", types.ErrInvalidConfig, c.Tolerance)
	}
	if c.Tolerance == 0 {
		c.Tolerance = DefaultTolerance
	}

	if c.Objective == "" {
		c.Objective = types.ObjectiveSum
	}
	if c.Objective != types.ObjectiveSum && c.Objective != types.ObjectiveMax {
		return fmt.Errorf("%w: unknown objective %q", types.ErrInvalidConfig, c.Objective)
	}

	if c.SolveTimeout < 0 {
		return fmt.Errorf("%w: negative solve timeout %v", types.ErrInvalidConfig, c.SolveTimeout)
	}

	return nil
}
