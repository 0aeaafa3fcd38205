package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		raw  string
		want zerolog.Level
	}{
		{raw: "trace", want: zerolog.TraceLevel},
		{raw: "debug", want: zerolog.DebugLevel},
		{raw: "INFO", want: zerolog.InfoLevel},
		{raw: " error ", want: zerolog.ErrorLevel},
		{raw: "", want: zerolog.WarnLevel},
		{raw: "bogus", want: zerolog.WarnLevel},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, parseLevel(tc.raw), "level %q", tc.raw)
	}
}
