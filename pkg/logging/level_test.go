package logging_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sergeizaitcev/metricsender/pkg/logging"
)

func TestLevel_UnmarshalText(t *testing.T) {
	testCases := []struct {
		text    string
		want    logging.Level
		wantErr bool
	}{
		{text: "debug", want: logging.LevelDebug},
		{text: "info", want: logging.LevelInfo},
		{text: "ERROR", want: logging.LevelError},
		{text: `"info"`, want: logging.LevelInfo},
		{text: "info+2", want: logging.LevelInfo + 2},
		{text: "error-1", want: logging.LevelError - 1},
		{text: "", wantErr: true},
		{text: "warn", wantErr: true},
		{text: "info+", wantErr: true},
		{text: "info+x", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			var got logging.Level
			err := got.UnmarshalText([]byte(tc.text))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLevel_JSON(t *testing.T) {
	var v struct {
		Level logging.Level `json:"level"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"level":"debug+1"}`), &v))
	require.Equal(t, logging.LevelDebug+1, v.Level)

	b, err := json.Marshal(&v)
	require.NoError(t, err)
	require.JSONEq(t, `{"level":"debug+1"}`, string(b))
}
