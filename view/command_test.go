package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySequence(t *testing.T) {
	b := mustBounds(t, 6, 100)
	s := NewState(b)

	var changed bool
	var err error
	for _, cmd := range []string{"right", "right", "left", "ch=4", "win=30", "in"} {
		s, changed, err = Apply(s, b, cmd)
		require.NoError(t, err, cmd)
		assert.True(t, changed, cmd)
	}
	assert.Equal(t, State{Channel: 4, WindowSize: 15, Start: 5}, s)
}

func TestApplyReportsNoChange(t *testing.T) {
	b := mustBounds(t, 6, 100)
	s := NewState(b)
	next, changed, err := Apply(s, b, " LEFT ")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, s, next)
}

func TestApplyErrors(t *testing.T) {
	b := mustBounds(t, 6, 100)
	s := NewState(b)

	for _, cmd := range []string{"jump", "ch", "ch=x", "win", "win=abc"} {
		_, _, err := Apply(s, b, cmd)
		assert.True(t, errors.Is(err, ErrUnknownCommand), cmd)
	}

	_, _, err := Apply(s, b, "ch=6")
	assert.True(t, errors.Is(err, ErrChannelOutOfRange))
}
