package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// Chat system prompt for normal turns (the turn builder prepends
	// passenger/context/format sections to the history)
	AssistantSystemPrompt = "You are a helpful airport assistant that recommends places for shopping, dining, and relaxing."

	// System prompt for the scan greeting call
	GreetingSystemPrompt = "You are a helpful travel assistant, providing recommendations from within an airport."

	// Scripted reply templates. These are returned without a model call.
	ItinerarySavedTemplate = `Done! I've added <b>%s</b> to your %s itinerary. Ask me for your itinerary any time to see everything you've saved.`

	SelectionNudgeReply = `I couldn't match that number to the latest recommendations. Please reply with one of the listed numbers, or ask me for fresh recommendations.`

	CuisineExpandQuestionTemplate = `I couldn't find %s options near %s. Would you like me to look across the whole airport instead?`

	CuisineDeclinedReply = `No problem! Is there another cuisine you'd like me to look for?`

	// Directions deep links always start from the fixed kiosk location.
	// Without a requested destination the link points at the main duty free.
	DirectionsBaseURL            = "https://maps.hiaairport.com/wayfinder"
	DirectionsSourceLocation     = "B01-UL001-IDL0001"
	DirectionsFallbackWaypoint   = "B01-UL001-IDA0101"
	DirectionsSourceQueryParam   = "src"
	DirectionsWaypointQueryParam = "dst"
)
