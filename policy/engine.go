// Package policy gates the auxiliary data providers with an OPA rego
// policy. Under the default policy every keyword-triggered lookup is
// allowed, so behavior matches plain intent detection; a deployment can
// supply its own policy to suppress lookups (for example, blocking weather
// calls for a location the upstream API cannot resolve).
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decisions returned by the policy.
const (
	DecisionAllow = "allow"
	DecisionBlock = "block"
)

// ProviderInput is the evaluation input for one provider firing.
type ProviderInput struct {
	Provider string `json:"provider"` // "market" or "weather"
	Language string `json:"language"`
	Location string `json:"location"`
}

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.provider_policy.decision"),
		rego.Module("provider_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate checks whether a provider may fire. A policy that yields no
// result defaults to allow: intent detection is availability-biased and the
// gate must not make it stricter by accident.
func (e *Engine) Evaluate(ctx context.Context, input ProviderInput) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return DecisionAllow, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}

	return DecisionAllow, nil
}

// DefaultPolicy allows every provider firing.
const DefaultPolicy = `
package provider_policy

default decision := "allow"
`
