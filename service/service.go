// Package service implements the context-augmentation pipeline: intent
// detection, auxiliary data lookup, history management, prompt composition
// and the model exchange.
package service

import (
	"context"

	"github.com/xiaot623/farmchat/intent"
	"github.com/xiaot623/farmchat/llm"
	"github.com/xiaot623/farmchat/policy"
	"github.com/xiaot623/farmchat/store"
)

// WeatherProvider fetches a tagged weather fact or error string.
type WeatherProvider interface {
	Fetch(location, lang string) string
}

// Answerer resolves a composed message list to a user-visible answer. It
// never fails; model errors surface as fallback sentences.
type Answerer interface {
	Answer(ctx context.Context, messages []llm.Message) string
}

// Service orchestrates one conversational exchange per Ask call.
type Service struct {
	store        store.Store
	weather      WeatherProvider
	llm          Answerer
	classifier   intent.Classifier
	policyEngine *policy.Engine
}

// New creates the service.
func New(st store.Store, weather WeatherProvider, answerer Answerer, classifier intent.Classifier, policyEngine *policy.Engine) *Service {
	return &Service{
		store:        st,
		weather:      weather,
		llm:          answerer,
		classifier:   classifier,
		policyEngine: policyEngine,
	}
}
