package store

// ChatMessage is one turn of conversation kept in session history
type ChatMessage struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// ItineraryEntry is a saved place inside one itinerary bucket.
// It is a materialized copy, never a reference into the catalog: once saved it
// stays stable even if the catalog changes.
type ItineraryEntry struct {
	ID          string   `json:"id,omitempty"` // primary location code, may be blank
	LocationIDs []string `json:"location_ids,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Concourse   string   `json:"concourse"`
	WalkTime    string   `json:"walk_time"`
	Image       string   `json:"image,omitempty"`
}

// Session represents the active passenger session state in memory
type Session struct {
	ID string `json:"id"`

	// Passenger binding (set by boarding-pass scan, may be refreshed per turn)
	PassengerName string `json:"passenger_name"`
	FlightNumber  string `json:"flight_number"`
	Gate          string `json:"gate"`
	BoardingTime  string `json:"boarding_time"`

	// Greeted flips once the scan greeting has been queued
	Greeted bool `json:"greeted"`

	// Last category implied by the user's own wording
	CurrentCategory string `json:"current_category"`

	// Cuisine-expansion negotiation: set when the requested cuisine is not
	// available near the gate and a yes/no answer is pending
	PendingCuisine        string `json:"pending_cuisine"`
	AwaitingCuisineExpand bool   `json:"awaiting_cuisine_expand"`

	History []ChatMessage `json:"history"`

	// Always holds the three canonical category buckets, possibly empty
	Itinerary map[string][]ItineraryEntry `json:"itinerary"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	CategoryDining   = "Dining"
	CategoryShopping = "Shopping"
	CategoryRelax    = "Relax"
)
