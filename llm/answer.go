package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
)

// state of one streaming exchange: Idle -> Streaming -> Complete | Failed.
type state int

const (
	stateIdle state = iota
	stateStreaming
	stateComplete
	stateFailed
)

// FailureKind is the terminal classification of a failed exchange. Each
// kind maps to exactly one fallback sentence.
type FailureKind int

const (
	FailureTimeout FailureKind = iota
	FailureConnection
	FailureTransport
	FailureDecode
	FailureInternal
)

// emptyResponse is returned when the stream completes with no content, so
// callers never receive a blank answer silently.
const emptyResponse = "AI: Received an empty or unparseable response from Ollama."

// FallbackMessage returns the fixed operator-facing sentence for a failure
// kind. The detail is truncated and only included where the wording carries
// it.
func FallbackMessage(kind FailureKind, detail string) string {
	if len(detail) > 100 {
		detail = detail[:100]
	}
	switch kind {
	case FailureTimeout:
		return "AI: मैं सोचने में थोड़ा समय ले रहा हूँ। शायद प्रश्न बड़ा है या सिस्टम संसाधन कम हैं। कृपया पुनः प्रयास करें।"
	case FailureConnection:
		return "AI: मैं अपनी सेवाओं से कनेक्ट नहीं हो पा रहा हूँ। कृपया सुनिश्चित करें कि Ollama सर्वर चल रहा है।"
	case FailureTransport:
		return fmt.Sprintf("AI: मेरी प्रतिक्रिया प्राप्त करने में त्रुटि हुई। विवरण: %s...", detail)
	case FailureDecode:
		return fmt.Sprintf("AI: Error processing stream: Invalid JSON from Ollama. %s", detail)
	default:
		return fmt.Sprintf("AI: एक महत्वपूर्ण अप्रत्याशित त्रुटि हुई: %s...", detail)
	}
}

// exchange tracks one streaming request through the state machine.
type exchange struct {
	state   state
	parts   []string
	failure FailureKind
	detail  string
}

func (e *exchange) accumulate(chunk *ChatChunk) error {
	if chunk.Message != nil {
		e.parts = append(e.parts, chunk.Message.Content)
	}
	return nil
}

func (e *exchange) fail(err error) {
	e.state = stateFailed
	e.failure, e.detail = classify(err)
	if partial := strings.Join(e.parts, ""); partial != "" {
		log.Printf("ERROR: model stream failed after %d chars of partial output: %v", len(partial), err)
	} else {
		log.Printf("ERROR: model stream failed: %v", err)
	}
}

// Answer runs one streaming exchange and always returns a user-visible
// answer: the accumulated reply on success, the empty-response sentinel on
// an empty stream, and a fixed fallback sentence on any failure. Partial
// accumulation from a failed stream is logged, never returned.
func (c *Client) Answer(ctx context.Context, messages []Message) string {
	ex := &exchange{state: stateIdle}

	ex.state = stateStreaming
	if err := c.ChatStream(ctx, messages, ex.accumulate); err != nil {
		ex.fail(err)
	} else {
		ex.state = stateComplete
	}

	switch ex.state {
	case stateFailed:
		return FallbackMessage(ex.failure, ex.detail)
	default:
		answer := strings.TrimSpace(strings.Join(ex.parts, ""))
		if answer == "" {
			return emptyResponse
		}
		return answer
	}
}

// classify maps a stream error to its terminal failure kind.
func classify(err error) (FailureKind, string) {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout, err.Error()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout, err.Error()
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return FailureConnection, err.Error()
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		detail := fmt.Sprintf("HTTP Status: %d, Response: %s", statusErr.StatusCode, statusErr.Body)
		return FailureTransport, detail
	}

	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return FailureDecode, decodeErr.Err.Error()
	}

	return FailureInternal, err.Error()
}
