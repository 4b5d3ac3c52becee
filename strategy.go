package knn

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedStrategy is returned for strategy values outside the closed set.
var ErrUnsupportedStrategy = errors.New("unsupported strategy")

// Strategy selects how nearest neighbors are found.
type Strategy int

const (
	// StrategyNative computes a dense distance matrix per query block and
	// partially sorts each row. It supports every metric.
	StrategyNative Strategy = iota
	// StrategyBrute scans all reference rows per query with a bounded heap.
	StrategyBrute
	// StrategyKDTree queries a k-d tree built at fit time.
	StrategyKDTree
	// StrategyBallTree queries a vantage-point (ball) tree built at fit time.
	StrategyBallTree
)

func (s Strategy) String() string {
	switch s {
	case StrategyNative:
		return "native"
	case StrategyBrute:
		return "brute"
	case StrategyKDTree:
		return "kd_tree"
	case StrategyBallTree:
		return "ball_tree"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// IsValid reports whether s is one of the supported strategies.
func (s Strategy) IsValid() bool {
	return s >= StrategyNative && s <= StrategyBallTree
}

// ParseStrategy parses a strategy name. "my_own" is accepted as an alias of
// "native".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native", "my_own":
		return StrategyNative, nil
	case "brute":
		return StrategyBrute, nil
	case "kd_tree":
		return StrategyKDTree, nil
	case "ball_tree":
		return StrategyBallTree, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedStrategy, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedStrategy, s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
