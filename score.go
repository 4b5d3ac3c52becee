package knn

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedScore is returned for an unknown score name.
var ErrUnsupportedScore = errors.New("unsupported score")

// Score names the function used to rate predictions against true labels.
type Score int

const (
	// Accuracy is the fraction of exact label matches.
	Accuracy Score = iota
)

func (s Score) String() string {
	switch s {
	case Accuracy:
		return "accuracy"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// IsValid reports whether s names a known score.
func (s Score) IsValid() bool {
	return s == Accuracy
}

// ParseScore parses a score name.
func ParseScore(s string) (Score, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "accuracy":
		return Accuracy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedScore, s)
	}
}

func (s Score) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedScore, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Score) UnmarshalText(text []byte) error {
	v, err := ParseScore(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// AccuracyScore returns the fraction of positions where pred equals truth.
// Both slices must have the same length; an empty input scores 0.
func AccuracyScore[L comparable](truth, pred []L) float64 {
	if len(truth) == 0 {
		return 0
	}

	hits := 0
	for i, v := range truth {
		if pred[i] == v {
			hits++
		}
	}
	return float64(hits) / float64(len(truth))
}

func evaluate[L comparable](s Score, truth, pred []L) float64 {
	switch s {
	case Accuracy:
		return AccuracyScore(truth, pred)
	default:
		panic("knn: unreachable score " + s.String())
	}
}
