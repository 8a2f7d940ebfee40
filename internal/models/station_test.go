package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
)

func TestPointWKBRoundTrip(t *testing.T) {
	raw, err := PointWKB(60.1699, 24.9384)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	g, err := wkb.Unmarshal(raw)
	require.NoError(t, err)

	p, ok := g.(*geom.Point)
	require.True(t, ok)
	// WKB stores lng/lat order.
	assert.Equal(t, 24.9384, p.X())
	assert.Equal(t, 60.1699, p.Y())
	assert.Equal(t, 4326, p.SRID())
}
