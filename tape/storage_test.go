package tape_test

import (
	"testing"

	"github.com/fieldcarve/fieldcarve/tape"
	"github.com/stretchr/testify/require"
)

func TestStorageReusesReleasedBuffer(t *testing.T) {
	s := tape.NewStorage()
	buf := s.Claim(8)
	require.Equal(t, 0, len(buf))
	require.GreaterOrEqual(t, cap(buf), 8)

	s.Release(buf)
	require.Equal(t, 1, s.Len())

	buf2 := s.Claim(4)
	require.Equal(t, 0, s.Len())
	require.GreaterOrEqual(t, cap(buf2), 8)
}

func TestStorageAllocatesFreshWhenNoSuitableBufferPooled(t *testing.T) {
	s := tape.NewStorage()
	small := s.Claim(2)
	s.Release(small)

	big := s.Claim(64)
	require.GreaterOrEqual(t, cap(big), 64)
	require.Equal(t, 1, s.Len(), "the too-small buffer should remain pooled")
}
