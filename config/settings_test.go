package config_test

import (
	"testing"

	"github.com/fieldcarve/fieldcarve/config"
	"github.com/stretchr/testify/require"
)

func TestResolveAppliesDefaults(t *testing.T) {
	s, err := config.Resolve()
	require.NoError(t, err)
	require.GreaterOrEqual(t, s.Threads, 1)
	require.Equal(t, 8, s.MaxDepth)
	require.Equal(t, 10.0, s.FlatnessThreshold)
}

func TestResolveAppliesOptionsLeftToRight(t *testing.T) {
	s, err := config.Resolve(
		config.WithThreads(4),
		config.WithMaxDepth(3),
		config.WithFlatnessThreshold(15),
		config.WithRegisterLimit(1024),
	)
	require.NoError(t, err)
	require.Equal(t, config.Settings{Threads: 4, MaxDepth: 3, FlatnessThreshold: 15, RegisterLimit: 1024}, s)
}

func TestResolveRejectsInvalidThreads(t *testing.T) {
	_, err := config.Resolve(config.WithThreads(0))
	require.ErrorIs(t, err, config.ErrInvalidThreads)
}

func TestResolveRejectsNegativeMaxDepth(t *testing.T) {
	_, err := config.Resolve(config.WithMaxDepth(-1))
	require.ErrorIs(t, err, config.ErrInvalidMaxDepth)
}

func TestResolveRejectsOutOfRangeFlatnessThreshold(t *testing.T) {
	_, err := config.Resolve(config.WithFlatnessThreshold(0))
	require.ErrorIs(t, err, config.ErrInvalidFlatnessThreshold)

	_, err = config.Resolve(config.WithFlatnessThreshold(180))
	require.ErrorIs(t, err, config.ErrInvalidFlatnessThreshold)
}

func TestResolveRejectsInvalidRegisterLimit(t *testing.T) {
	_, err := config.Resolve(config.WithRegisterLimit(0))
	require.ErrorIs(t, err, config.ErrInvalidRegisterLimit)
}
