package retention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHorizonIsNinetyDays(t *testing.T) {
	assert.Equal(t, 90*24*time.Hour, Horizon)
}

func TestCutoffAt(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	cutoff := CutoffAt(now)

	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), cutoff)
	assert.True(t, cutoff.Before(now))
}

func TestNewSweeperDefaultsInterval(t *testing.T) {
	s := NewSweeper(nil, 0)

	assert.Equal(t, DefaultInterval, s.interval)
}
