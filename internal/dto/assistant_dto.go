package dto

import (
	"github.com/bibincs/hackathonchatbot/pkg/store"
)

// ScanRequest carries the boarding-pass fields captured by the kiosk scanner
type ScanRequest struct {
	PassengerName string `json:"passenger_name" validate:"required"`
	FlightNumber  string `json:"flight_number"`
	Gate          string `json:"gate"`
	Time          string `json:"time"`
}

type ScanResponse struct {
	SessionID string `json:"session_id"`
	Assistant string `json:"assistant"`
}

// AskRequest is one conversational turn. The passenger fields are optional
// refreshers; a scanned session already carries them.
type AskRequest struct {
	Question      string `json:"question" validate:"required"`
	PassengerName string `json:"passenger_name,omitempty"`
	FlightNumber  string `json:"flight_number,omitempty"`
	Gate          string `json:"gate,omitempty"`
	Time          string `json:"time,omitempty"`
}

type AskResponse struct {
	Assistant string `json:"assistant"`
}

type ItineraryResponse struct {
	SessionID string                            `json:"session_id"`
	Itinerary map[string][]store.ItineraryEntry `json:"itinerary"`
}

type RemoveItineraryEntryRequest struct {
	Category string `json:"category" validate:"required"`
	Index    int    `json:"index"`
}
