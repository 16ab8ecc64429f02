package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xiaot623/farmchat/domain"
	"github.com/xiaot623/farmchat/llm"
	"github.com/xiaot623/farmchat/market"
	"github.com/xiaot623/farmchat/policy"
	"github.com/xiaot623/farmchat/prompt"
)

// ErrEmptyPrompt is returned when the prompt is empty after trimming. It is
// the only client-input error Ask can produce; every downstream failure is
// absorbed into the answer text.
var ErrEmptyPrompt = errors.New("prompt is required")

// Tags prefixing the ephemeral context messages.
const (
	marketInfoTag  = "MARKET_INFO: "
	weatherInfoTag = "WEATHER_INFO: "
)

// Ask handles one conversational exchange. The user turn and the resulting
// assistant turn (a fallback sentence included) are persisted; the injected
// context messages are attached to the outbound model request only.
func (s *Service) Ask(ctx context.Context, req domain.AskRequest) (*domain.AskResponse, error) {
	text := strings.TrimSpace(req.Prompt)
	if text == "" {
		return nil, ErrEmptyPrompt
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	language := strings.ToLower(req.Language)
	if language == "" {
		language = "en"
	}
	location := req.Location
	if location == "" {
		location = "Unknown"
	}

	log.Printf("processing request: session=%s language=%s location=%s prompt=%.100q", sessionID, language, location, text)
	log.Printf("farming vocabulary check for session %s: %v", sessionID, s.classifier.IsFarmingQuery(text))

	intents := s.classifier.Classify(text)

	var extra []llm.Message
	if intents.Market && s.providerAllowed(ctx, "market", language, location) {
		priceInfo := market.Lookup(language, intents.Product)
		extra = append(extra, llm.Message{Role: string(domain.RoleSystem), Content: marketInfoTag + priceInfo})
		log.Printf("added market info to context for session %s, product=%q", sessionID, intents.Product)
	}
	if intents.Weather && s.providerAllowed(ctx, "weather", language, location) {
		weatherInfo := s.weather.Fetch(location, language)
		extra = append(extra, llm.Message{Role: string(domain.RoleSystem), Content: weatherInfoTag + weatherInfo})
		log.Printf("added weather info to context for session %s", sessionID)
	}

	userTurn := domain.Turn{Role: domain.RoleUser, Content: text, CreatedAt: time.Now()}
	if err := s.store.Append(ctx, sessionID, userTurn); err != nil {
		log.Printf("ERROR: failed to persist user turn for session %s: %v", sessionID, err)
	}

	history, err := s.store.History(ctx, sessionID)
	if err != nil {
		log.Printf("ERROR: failed to load history for session %s: %v", sessionID, err)
		history = []domain.Turn{userTurn}
	}

	messages := prompt.Compose(language, extra, history)

	answer := s.llm.Answer(ctx, messages)

	assistantTurn := domain.Turn{Role: domain.RoleAssistant, Content: answer, CreatedAt: time.Now()}
	if err := s.store.Append(ctx, sessionID, assistantTurn); err != nil {
		log.Printf("ERROR: failed to persist assistant turn for session %s: %v", sessionID, err)
	}

	return &domain.AskResponse{SessionID: sessionID, Response: answer}, nil
}

// History returns the persisted turns for a session.
func (s *Service) History(ctx context.Context, sessionID string) ([]domain.Turn, error) {
	return s.store.History(ctx, sessionID)
}

// providerAllowed consults the gating policy. Evaluation errors fail open:
// the lookup fires, matching the availability bias of intent detection.
func (s *Service) providerAllowed(ctx context.Context, provider, language, location string) bool {
	if s.policyEngine == nil {
		return true
	}
	decision, err := s.policyEngine.Evaluate(ctx, policy.ProviderInput{
		Provider: provider,
		Language: language,
		Location: location,
	})
	if err != nil {
		log.Printf("WARN: provider policy evaluation failed for %s: %v", provider, err)
		return true
	}
	if decision == policy.DecisionBlock {
		log.Printf("provider %s blocked by policy", provider)
		return false
	}
	return true
}
