package knn

import (
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/knn/distance"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultK is the neighbor count used by DefaultParams.
	DefaultK = 5

	// DefaultBlockSize bounds the number of query rows per distance matrix.
	DefaultBlockSize = 1000
)

// Params are the classifier hyperparameters. They are validated eagerly by
// New and never re-checked by Fit or Predict.
type Params struct {
	// K is the number of neighbors that vote.
	K int `yaml:"k" envconfig:"K" default:"5"`

	// Strategy selects the neighbor search backend.
	Strategy Strategy `yaml:"strategy" envconfig:"STRATEGY" default:"native"`

	// Metric selects the distance. Non-native strategies require Euclidean.
	Metric distance.Metric `yaml:"metric" envconfig:"METRIC" default:"euclidean"`

	// Weighted enables 1/(distance+Eps) vote weights instead of plain majority.
	Weighted bool `yaml:"weighted" envconfig:"WEIGHTED" default:"false"`

	// BlockSize is the maximum number of query rows searched at once.
	BlockSize int `yaml:"block_size" envconfig:"BLOCK_SIZE" default:"1000"`
}

// DefaultParams returns the default parameters.
func DefaultParams() Params {
	return Params{
		K:         DefaultK,
		Strategy:  StrategyNative,
		Metric:    distance.Euclidean,
		Weighted:  false,
		BlockSize: DefaultBlockSize,
	}
}

// Validate checks every field and returns a *ConfigError for the first
// invalid one.
func (p Params) Validate() error {
	if p.K < 1 {
		return &ConfigError{Field: "k", Value: p.K, Reason: "must be positive"}
	}
	if !p.Strategy.IsValid() {
		return &ConfigError{Field: "strategy", Value: p.Strategy, Reason: "unsupported strategy"}
	}
	if !p.Metric.IsValid() {
		return &ConfigError{Field: "metric", Value: p.Metric, Reason: "unsupported metric"}
	}
	if p.BlockSize < 1 {
		return &ConfigError{Field: "block_size", Value: p.BlockSize, Reason: "must be positive"}
	}
	if p.Strategy != StrategyNative && p.Metric != distance.Euclidean {
		return &ConfigError{
			Field:  "metric",
			Value:  p.Metric,
			Reason: fmt.Sprintf("strategy %s supports only euclidean", p.Strategy),
		}
	}
	return nil
}

// LoadParams decodes YAML parameters from r on top of DefaultParams and
// validates the result. Unknown keys are rejected.
//
//	k: 7
//	strategy: kd_tree
//	metric: euclidean
//	weighted: true
//	block_size: 500
func LoadParams(r io.Reader) (Params, error) {
	p := DefaultParams()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Params{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// ParamsFromEnv reads parameters from environment variables named
// <prefix>_K, <prefix>_STRATEGY, <prefix>_METRIC, <prefix>_WEIGHTED and
// <prefix>_BLOCK_SIZE, falling back to the defaults, and validates them.
func ParamsFromEnv(prefix string) (Params, error) {
	var p Params
	if err := envconfig.Process(prefix, &p); err != nil {
		return Params{}, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
