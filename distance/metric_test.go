package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		in      string
		want    Metric
		wantErr bool
	}{
		{"euclidean", Euclidean, false},
		{" Cosine ", Cosine, false},
		{"manhattan", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMetric(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedMetric)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetricText(t *testing.T) {
	var m Metric
	require.NoError(t, m.UnmarshalText([]byte("cosine")))
	assert.Equal(t, Cosine, m)

	b, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "cosine", string(b))

	_, err = Metric(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "Unknown(9)", Metric(9).String())
	assert.False(t, Metric(9).IsValid())
}
