package queue_test

import (
	"testing"

	"github.com/fieldcarve/fieldcarve/queue"
	"github.com/stretchr/testify/require"
)

func TestHandlePopsOwnDequeLIFO(t *testing.T) {
	p := queue.NewPool[int](2)
	h := p.Handle(0)

	h.Push(1)
	h.Push(2)
	h.Push(3)

	v, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestHandleStealsFromOtherThreadFIFO(t *testing.T) {
	p := queue.NewPool[int](2)
	owner := p.Handle(0)
	thief := p.Handle(1)

	owner.Push(10)
	owner.Push(20)
	owner.Push(30)

	v, ok := thief.Pop()
	require.True(t, ok)
	require.Equal(t, 10, v, "steal takes from the front, the oldest pushed item")
}

func TestHandlePopEmptyReturnsFalse(t *testing.T) {
	p := queue.NewPool[int](3)
	h := p.Handle(0)
	_, ok := h.Pop()
	require.False(t, ok)
}

func TestHandleChangedTracksEmptinessTransition(t *testing.T) {
	p := queue.NewPool[int](1)
	h := p.Handle(0)

	require.False(t, h.Changed(), "still empty, no transition yet")

	h.Push(1)
	require.True(t, h.Changed(), "empty -> non-empty is a transition")
	require.False(t, h.Changed(), "no further transition while still non-empty")

	h.Pop()
	require.True(t, h.Changed(), "non-empty -> empty is a transition")
}
