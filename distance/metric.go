package distance

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedMetric is returned for metric values outside the closed set.
var ErrUnsupportedMetric = errors.New("unsupported metric")

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	Euclidean Metric = iota
	Cosine
)

func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Cosine:
		return "cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// IsValid reports whether m is one of the supported metrics.
func (m Metric) IsValid() bool {
	return m == Euclidean || m == Cosine
}

// ParseMetric parses the textual metric name ("euclidean" or "cosine").
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "euclidean":
		return Euclidean, nil
	case "cosine":
		return Cosine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMetric, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMetric, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(text []byte) error {
	v, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
