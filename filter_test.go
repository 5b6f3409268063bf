package loghandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	filters := []Filter{
		{Prefix: "", Level: LevelError},
		{Prefix: "app.db", Level: LevelDebug},
		{Prefix: "app.db.slow", Level: LevelWarning},
	}

	cases := []struct {
		name   string
		logger string
		want   Level
	}{
		{"only the empty-prefix entry matches", "other", LevelError},
		{"more specific later entry wins", "app.db.slow.query", LevelWarning},
		{"broader entry wins when the more specific one doesn't match", "app.db.fast", LevelDebug},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Evaluate(tc.logger, filters))
		})
	}
}

func TestEvaluate_emptyPrefixMatchesEverything(t *testing.T) {
	t.Parallel()

	filters := []Filter{{Prefix: "", Level: LevelInfo}}
	assert.Equal(t, LevelInfo, Evaluate("anything.at.all", filters))
}

func TestEvaluate_noMatchIsLevelOff(t *testing.T) {
	t.Parallel()

	filters := []Filter{{Prefix: "app.db", Level: LevelDebug}}
	assert.Equal(t, LevelOff, Evaluate("other", filters))
}

func TestAccepts(t *testing.T) {
	t.Parallel()

	filters := []Filter{{Prefix: "app", Level: LevelWarning}}

	assert.True(t, Accepts(Record{LoggerName: "app.x", Level: LevelError}, filters))
	assert.True(t, Accepts(Record{LoggerName: "app.x", Level: LevelWarning}, filters))
	assert.False(t, Accepts(Record{LoggerName: "app.x", Level: LevelInfo}, filters))
	assert.False(t, Accepts(Record{LoggerName: "other", Level: LevelPanic}, filters))
}
