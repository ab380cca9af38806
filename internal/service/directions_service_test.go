package service

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bibincs/hackathonchatbot/internal/constant"
)

func TestBuildDirectionsURL(t *testing.T) {
	svc := NewDirectionsService()

	t.Run("single waypoint", func(t *testing.T) {
		raw := svc.BuildDirectionsURL([]string{"B01-UL001-IDA0431"})

		parsed, err := url.Parse(raw)
		assert.NoError(t, err)
		assert.Equal(t, constant.DirectionsSourceLocation, parsed.Query().Get("src"))
		assert.Equal(t, "B01-UL001-IDA0431", parsed.Query().Get("dst"))
	})

	t.Run("multiple waypoints joined by comma", func(t *testing.T) {
		raw := svc.BuildDirectionsURL([]string{"B01-UL001-IDA0431", "B01-UL002-IDB0200"})

		parsed, err := url.Parse(raw)
		assert.NoError(t, err)
		assert.Equal(t, "B01-UL001-IDA0431,B01-UL002-IDB0200", parsed.Query().Get("dst"))
	})

	t.Run("blank waypoints fall back to the default destination", func(t *testing.T) {
		for _, waypoints := range [][]string{nil, {}, {"", "  "}} {
			raw := svc.BuildDirectionsURL(waypoints)

			parsed, err := url.Parse(raw)
			assert.NoError(t, err)
			assert.Equal(t, constant.DirectionsFallbackWaypoint, parsed.Query().Get("dst"))
		}
	})
}
