package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/bibincs/hackathonchatbot/internal/constant"
	"github.com/bibincs/hackathonchatbot/internal/dto"
	"github.com/bibincs/hackathonchatbot/pkg/corpus"
	"github.com/bibincs/hackathonchatbot/pkg/llm"
	"github.com/bibincs/hackathonchatbot/pkg/rag/intent"
	"github.com/bibincs/hackathonchatbot/pkg/rag/itinerary"
	"github.com/bibincs/hackathonchatbot/pkg/rag/listing"
	"github.com/bibincs/hackathonchatbot/pkg/rag/prompt"
	"github.com/bibincs/hackathonchatbot/pkg/rag/retriever"
	"github.com/bibincs/hackathonchatbot/pkg/rag/session"
	"github.com/bibincs/hackathonchatbot/pkg/store"
)

// IAssistantService defines the assistant service interface
type IAssistantService interface {
	Scan(ctx context.Context, sessionID string, request *dto.ScanRequest) (*dto.ScanResponse, error)
	Ask(ctx context.Context, sessionID string, request *dto.AskRequest) (*dto.AskResponse, error)
	GetItinerary(sessionID string) *dto.ItineraryResponse
	RemoveItineraryEntry(sessionID string, request *dto.RemoveItineraryEntryRequest)
	ResetSession(sessionID string)
}

// assistantService drives the per-session conversation state machine.
//
// Known limitation: concurrent requests for the same session read and write
// the whole session record with no ordering guarantee; the last writer wins.
type assistantService struct {
	llmProvider llm.LLMProvider
	retriever   *retriever.Retriever
	catalog     *corpus.Index
	sessions    *session.Manager
	llmLogger   *log.Logger
}

// NewAssistantService creates the assistant service with its domain components
func NewAssistantService(
	llmProvider llm.LLMProvider,
	ragRetriever *retriever.Retriever,
	catalog *corpus.Index,
	sessions *session.Manager,
) IAssistantService {
	return &assistantService{
		llmProvider: llmProvider,
		retriever:   ragRetriever,
		catalog:     catalog,
		sessions:    sessions,
		llmLogger:   initLLMLogger(),
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_turns.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// Scan binds boarding-pass data to the session and queues the scripted
// greeting. The greeting model call is best-effort: on failure we fall back
// to a canned greeting carrying the same recommendations.
func (s *assistantService) Scan(ctx context.Context, sessionID string, request *dto.ScanRequest) (*dto.ScanResponse, error) {
	sess := s.sessions.LoadOrCreate(sessionID)
	sess.PassengerName = request.PassengerName
	sess.FlightNumber = request.FlightNumber
	sess.Gate = request.Gate
	sess.BoardingTime = request.Time
	sess.Greeted = true

	summary := s.recommendationSummary()
	greetingPrompt := prompt.NewGreetingBuilder(sess, summary).Build()

	greeting, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.GreetingSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: greetingPrompt},
	}, llm.WithMaxTokens(500))
	if err != nil {
		s.llmLogger.Printf("[SCAN] Greeting generation failed, using fallback: %v", err)
		greeting = prompt.FallbackGreeting(sess, summary)
	}

	sess.History = append(sess.History, store.ChatMessage{Role: store.RoleAssistant, Content: greeting})
	s.sessions.Save(sess)

	return &dto.ScanResponse{
		SessionID: sess.ID,
		Assistant: greeting,
	}, nil
}

// recommendationSummary picks one catalog item per canonical category for
// the greeting prompt
func (s *assistantService) recommendationSummary() string {
	picked := map[string]*corpus.CatalogItem{}
	items := s.catalog.Items()
	for i := range items {
		text := items[i].Name + " " + strings.Join(items[i].Categories, " ") + " " + items[i].Description
		category, ok := intent.MatchCategory(text)
		if !ok {
			continue
		}
		if _, taken := picked[category]; !taken {
			picked[category] = &items[i]
		}
	}

	var lines []string
	for _, category := range []string{store.CategoryDining, store.CategoryShopping, store.CategoryRelax} {
		item, ok := picked[category]
		if !ok {
			continue
		}
		location := item.Concourse
		if location == "" {
			location = "unspecified location"
		}
		lines = append(lines, fmt.Sprintf("One %s recommendation is %s located at %s.", strings.ToLower(category), item.Name, location))
	}
	if len(lines) == 0 {
		return "No airport-specific recommendations are available right now."
	}
	return strings.Join(lines, "\n")
}

// Ask processes one conversational turn. Branches are tested in a fixed
// priority order; the first match wins and every branch leaves exactly one
// assistant message in the history.
func (s *assistantService) Ask(ctx context.Context, sessionID string, request *dto.AskRequest) (*dto.AskResponse, error) {
	question := strings.TrimSpace(request.Question)
	if question == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "question is required")
	}

	sess := s.sessions.LoadOrCreate(sessionID)
	bindPassenger(sess, request)

	sess.History = append(sess.History, store.ChatMessage{Role: store.RoleUser, Content: question})
	sess.CurrentCategory = intent.DetectCategory(question, sess.CurrentCategory)

	reply, err := s.routeTurn(ctx, sess, question)
	if err != nil {
		// Model failures are fatal to the turn and leave the session as it
		// was before the request
		return nil, err
	}

	sess.History = append(sess.History, store.ChatMessage{Role: store.RoleAssistant, Content: reply})
	s.sessions.Save(sess)

	return &dto.AskResponse{Assistant: reply}, nil
}

func bindPassenger(sess *store.Session, request *dto.AskRequest) {
	if request.PassengerName != "" {
		sess.PassengerName = request.PassengerName
	}
	if request.FlightNumber != "" {
		sess.FlightNumber = request.FlightNumber
	}
	if request.Gate != "" {
		sess.Gate = request.Gate
	}
	if request.Time != "" {
		sess.BoardingTime = request.Time
	}
}

func (s *assistantService) routeTurn(ctx context.Context, sess *store.Session, question string) (string, error) {
	// 1. Explicit add command: no model call
	if place, category, ok := intent.ParseAddCommand(question); ok {
		return s.handleAddCommand(sess, place, category), nil
	}

	// 2. Numeric selection against the latest rendered list: no model call
	if ordinal, ok := intent.ParseNumericSelection(question); ok {
		return s.handleNumericSelection(sess, ordinal), nil
	}

	// 3. Pending cuisine-expansion confirmation
	if sess.AwaitingCuisineExpand {
		return s.handleCuisineConfirmation(ctx, sess, question)
	}

	// 4. Cuisine requested but not available near the gate: negotiate before
	// spending a model call
	cuisine := intent.DetectCuisine(question)
	if cuisine != "" {
		concourse := corpus.InferConcourse(sess.Gate)
		if !s.retriever.CuisineAvailable(cuisine, concourse) {
			sess.PendingCuisine = cuisine
			sess.AwaitingCuisineExpand = true
			s.llmLogger.Printf("[TURN] Cuisine %q unavailable near %s, asking to expand", cuisine, concourse)
			return fmt.Sprintf(constant.CuisineExpandQuestionTemplate, cuisine, concourse), nil
		}
	}

	// 5. Default path: retrieve, prompt, generate
	return s.generateRecommendations(ctx, sess, question, sess.Gate, cuisine)
}

func (s *assistantService) handleAddCommand(sess *store.Session, place, category string) string {
	entry := s.resolveEntry(sess, place)
	itinerary.Add(sess.Itinerary, category, entry)
	s.llmLogger.Printf("[TURN] Saved %q to %s itinerary", entry.Name, category)
	return fmt.Sprintf(constant.ItinerarySavedTemplate, entry.Name, category)
}

func (s *assistantService) handleNumericSelection(sess *store.Session, ordinal int) string {
	entries := listing.Parse(lastAssistantMessage(sess))
	selected := listing.FindByOrdinal(entries, ordinal)
	if selected == nil {
		return constant.SelectionNudgeReply
	}

	entry := store.ItineraryEntry{
		Name:        selected.Name,
		Description: selected.Description,
		WalkTime:    selected.WalkTime,
		Concourse:   selected.Concourse,
	}
	if item := s.catalog.BestMatch(selected.Name, sess.Gate); item != nil {
		entry.ID = item.ID
		entry.LocationIDs = item.LocationIDs
		entry.Image = item.Image
		if entry.Description == "" {
			entry.Description = item.Description
		}
	}

	category := sess.CurrentCategory
	if category == "" {
		category = store.CategoryDining
	}
	itinerary.Add(sess.Itinerary, category, entry)
	s.llmLogger.Printf("[TURN] Saved selection %d (%q) to %s itinerary", ordinal, entry.Name, category)
	return fmt.Sprintf(constant.ItinerarySavedTemplate, entry.Name, category)
}

func (s *assistantService) handleCuisineConfirmation(ctx context.Context, sess *store.Session, question string) (string, error) {
	switch intent.ClassifyConfirmation(question) {
	case intent.ConfirmYes:
		cuisine := sess.PendingCuisine
		sess.PendingCuisine = ""
		sess.AwaitingCuisineExpand = false
		// Concourse restriction lifted: empty gate widens the search to the
		// whole airport
		query := cuisine + " restaurants"
		return s.generateRecommendations(ctx, sess, query, "", cuisine)

	case intent.ConfirmNo:
		sess.PendingCuisine = ""
		sess.AwaitingCuisineExpand = false
		return constant.CuisineDeclinedReply, nil

	default:
		// Unclear: re-ask verbatim, keep the pending state
		concourse := corpus.InferConcourse(sess.Gate)
		return fmt.Sprintf(constant.CuisineExpandQuestionTemplate, sess.PendingCuisine, concourse), nil
	}
}

func (s *assistantService) generateRecommendations(ctx context.Context, sess *store.Session, query, gate, cuisine string) (string, error) {
	contextText, err := s.retriever.Retrieve(query, gate, cuisine)
	if err != nil {
		return "", err
	}

	systemPrompt := prompt.NewTurnBuilder(sess, contextText).Build()

	messages := make([]llm.Message, 0, len(sess.History)+1)
	messages = append(messages, llm.Message{Role: constant.ChatMessageRoleSystem, Content: systemPrompt})
	for _, msg := range sess.History {
		messages = append(messages, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	reply, err := s.llmProvider.Chat(ctx, messages, llm.WithMaxTokens(500))
	if err != nil {
		s.llmLogger.Printf("[ERROR] LLM generation failed: %v", err)
		return "", err
	}
	return reply, nil
}

// resolveEntry materializes an itinerary entry for a named place. The
// catalog is authoritative when it matches; otherwise we recover what we can
// from the latest rendered recommendation list, and a bare name is still a
// valid save.
func (s *assistantService) resolveEntry(sess *store.Session, place string) store.ItineraryEntry {
	rendered := listing.FindByName(listing.Parse(lastAssistantMessage(sess)), place)

	if item := s.catalog.BestMatch(place, sess.Gate); item != nil {
		entry := store.ItineraryEntry{
			ID:          item.ID,
			LocationIDs: item.LocationIDs,
			Name:        item.Name,
			Description: item.Description,
			Concourse:   item.Concourse,
			Image:       item.Image,
		}
		if rendered != nil {
			entry.WalkTime = rendered.WalkTime
		}
		return entry
	}

	entry := store.ItineraryEntry{Name: place}
	if rendered != nil {
		entry.Name = rendered.Name
		entry.Description = rendered.Description
		entry.WalkTime = rendered.WalkTime
		entry.Concourse = rendered.Concourse
	}
	return entry
}

func lastAssistantMessage(sess *store.Session) string {
	for i := len(sess.History) - 1; i >= 0; i-- {
		if sess.History[i].Role == store.RoleAssistant {
			return sess.History[i].Content
		}
	}
	return ""
}

func (s *assistantService) GetItinerary(sessionID string) *dto.ItineraryResponse {
	sess := s.sessions.LoadOrCreate(sessionID)
	// First contact may arrive through this read; persist the fresh session
	s.sessions.Save(sess)
	return &dto.ItineraryResponse{
		SessionID: sess.ID,
		Itinerary: sess.Itinerary,
	}
}

func (s *assistantService) RemoveItineraryEntry(sessionID string, request *dto.RemoveItineraryEntryRequest) {
	sess := s.sessions.LoadOrCreate(sessionID)
	itinerary.Remove(sess.Itinerary, request.Category, request.Index)
	s.sessions.Save(sess)
}

func (s *assistantService) ResetSession(sessionID string) {
	s.sessions.Clear(sessionID)
}
