package prompt

import (
	"fmt"
	"strings"

	"github.com/bibincs/hackathonchatbot/pkg/store"
)

// TurnBuilder assembles the system+context prompt for a normal assistant
// turn. The formatting section is a contract: pkg/rag/listing parses the
// rendered list back out of assistant replies, so the shape here and the
// parser pattern must move together.
type TurnBuilder struct {
	session *store.Session
	context string
}

func NewTurnBuilder(session *store.Session, context string) *TurnBuilder {
	return &TurnBuilder{
		session: session,
		context: context,
	}
}

func (b *TurnBuilder) Build() string {
	var prompt strings.Builder

	b.writeRole(&prompt)
	b.writePassenger(&prompt)
	b.writeContext(&prompt)
	b.writeFormat(&prompt)

	return prompt.String()
}

func (b *TurnBuilder) writeRole(prompt *strings.Builder) {
	prompt.WriteString("You are a helpful airport assistant that recommends places for shopping, dining, and relaxing.\n")
	prompt.WriteString("Ground every recommendation strictly in the airport information below. Do not invent venues.\n\n")
}

func (b *TurnBuilder) writePassenger(prompt *strings.Builder) {
	prompt.WriteString("<passenger>\n")
	prompt.WriteString(fmt.Sprintf("Name: %s\n", orUnknown(b.session.PassengerName)))
	prompt.WriteString(fmt.Sprintf("Flight: %s\n", orUnknown(b.session.FlightNumber)))
	prompt.WriteString(fmt.Sprintf("Gate: %s\n", orUnknown(b.session.Gate)))
	prompt.WriteString(fmt.Sprintf("Boarding time: %s\n", orUnknown(b.session.BoardingTime)))
	prompt.WriteString("</passenger>\n\n")
}

func (b *TurnBuilder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("<airport_information>\n")
	prompt.WriteString(b.context)
	prompt.WriteString("\n</airport_information>\n\n")
}

func (b *TurnBuilder) writeFormat(prompt *strings.Builder) {
	prompt.WriteString("<format>\n")
	prompt.WriteString("When you recommend places, render them as a numbered list where every entry follows this exact shape:\n")
	prompt.WriteString("1. <b>Place Name</b> — short description<br><i style=\"color:gray\">located within a 5 minute walk</i><br><i style=\"color:gray\">Concourse A, Level 1</i>\n")
	prompt.WriteString("Keep the bold name, the em dash, and the two italic lines in that order. ")
	prompt.WriteString("Use the concourse and level from the airport information. ")
	prompt.WriteString("After the list, remind the passenger they can save a place by replying with its number ")
	prompt.WriteString("or with \"add <name> to my <category> itinerary\".\n")
	prompt.WriteString("</format>")
}

func orUnknown(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

// GreetingBuilder assembles the one-off scan greeting prompt from a
// recommendation summary spanning the three categories
type GreetingBuilder struct {
	session *store.Session
	summary string
}

func NewGreetingBuilder(session *store.Session, summary string) *GreetingBuilder {
	return &GreetingBuilder{
		session: session,
		summary: summary,
	}
}

func (b *GreetingBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString("You are a friendly and knowledgeable local travel expert based at the airport. ")
	prompt.WriteString("Provide a brief, personalized, engaging greeting and recommendation to a visitor.\n\n")
	prompt.WriteString("You must use the exact titles and locations provided in the recommendations list. ")
	prompt.WriteString("Do not add any extra recommendations or information not found in the list.\n\n")

	prompt.WriteString("Passenger Details:\n")
	prompt.WriteString(fmt.Sprintf("- Name: %s\n", orUnknown(b.session.PassengerName)))
	prompt.WriteString(fmt.Sprintf("- Flight Details: Flight %s from Gate %s at %s.\n\n",
		orUnknown(b.session.FlightNumber), orUnknown(b.session.Gate), orUnknown(b.session.BoardingTime)))

	prompt.WriteString("Here are the recommendations to include in your response:\n")
	prompt.WriteString(b.summary)
	prompt.WriteString("\n\n")

	prompt.WriteString("Instructions for your response:\n")
	prompt.WriteString("1. Start with a friendly greeting to the passenger, referencing their name and flight details.\n")
	prompt.WriteString("2. Briefly mention the recommendations you've identified, using only the titles and locations provided.\n")
	prompt.WriteString("3. Conclude with a warm, encouraging closing statement and wish them a safe flight.")

	return prompt.String()
}

// FallbackGreeting is used when the model call for the scan greeting fails;
// the scan flow degrades to a canned text instead of failing the request
func FallbackGreeting(session *store.Session, summary string) string {
	name := session.PassengerName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(
		"Hi %s! I'm your travel assistant. We couldn't get a personalized response right now, but here are some recommendations based on your flight: %s",
		name, summary,
	)
}
