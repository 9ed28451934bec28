package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sergeizaitcev/metricsender/internal/metrics"
)

func TestMetric_String(t *testing.T) {
	testCases := []struct {
		name   string
		metric metrics.Metric
		want   string
	}{
		{
			name:   "gauge",
			metric: metrics.New("cpu.usage", "42.5"),
			want:   "cpu.usage 42.5",
		},
		{
			name:   "not a number",
			metric: metrics.New("status", "green"),
			want:   "status green",
		},
		{
			name:   "empty",
			metric: metrics.New("", ""),
			want:   " ",
		},
		{
			name:   "spaces",
			metric: metrics.New("disk free", "10 GB"),
			want:   "disk free 10 GB",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.metric.String())
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    metrics.Metric
		wantErr error
	}{
		{
			name:  "ok",
			input: "cpu.usage 42.5",
			want:  metrics.New("cpu.usage", "42.5"),
		},
		{
			name:  "value with spaces",
			input: "load 1 5 15",
			want:  metrics.New("load", "1 5 15"),
		},
		{
			name:  "empty value",
			input: "name ",
			want:  metrics.New("name", ""),
		},
		{
			name:    "no separator",
			input:   "cpu.usage",
			wantErr: metrics.ErrMalformed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := metrics.Parse(tc.input)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
