package service

import (
	"net/url"
	"strings"

	"github.com/bibincs/hackathonchatbot/internal/constant"
)

// IDirectionsService builds wayfinder deep links for the kiosk frontend
type IDirectionsService interface {
	BuildDirectionsURL(waypoints []string) string
}

type directionsService struct{}

func NewDirectionsService() IDirectionsService {
	return &directionsService{}
}

// BuildDirectionsURL returns a map link from the fixed kiosk location to the
// requested waypoints. Blank waypoints are skipped; with none left the link
// falls back to the default destination.
func (s *directionsService) BuildDirectionsURL(waypoints []string) string {
	var dst []string
	for _, wp := range waypoints {
		if trimmed := strings.TrimSpace(wp); trimmed != "" {
			dst = append(dst, trimmed)
		}
	}
	if len(dst) == 0 {
		dst = []string{constant.DirectionsFallbackWaypoint}
	}

	params := url.Values{}
	params.Set(constant.DirectionsSourceQueryParam, constant.DirectionsSourceLocation)
	params.Set(constant.DirectionsWaypointQueryParam, strings.Join(dst, ","))

	return constant.DirectionsBaseURL + "?" + params.Encode()
}
