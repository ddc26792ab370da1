package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderKeepsNewestFirst(t *testing.T) {
	r := NewRecorder(2)
	r.Notify(Info, "one")
	r.Notify(Success, "two")
	r.Notify(Error, "three")

	recent := r.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "three", recent[0].Message)
	assert.Equal(t, Error, recent[0].Severity)
	assert.Equal(t, "two", recent[1].Message)

	latest, ok := r.Latest()
	require.True(t, ok)
	assert.Equal(t, "three", latest.Message)
}

func TestRecorderEmpty(t *testing.T) {
	r := NewRecorder(0)
	_, ok := r.Latest()
	assert.False(t, ok)
	assert.Empty(t, r.Recent())
}

func TestMulti(t *testing.T) {
	a, b := NewRecorder(5), NewRecorder(5)
	Multi{a, b, LogNotifier{}}.Notify(Success, "done")

	for _, r := range []*Recorder{a, b} {
		latest, ok := r.Latest()
		require.True(t, ok)
		assert.Equal(t, "done", latest.Message)
	}
}
