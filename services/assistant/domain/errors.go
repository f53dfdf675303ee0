package domain

import "errors"

// Sentinel errors for the assistant domain. Use errors.Is() to check these.
var (
	// ErrAssistantUnavailable indicates the external assistant endpoint failed or is unreachable.
	ErrAssistantUnavailable = errors.New("assistant unavailable")

	// ErrInvalidMessage indicates an empty or oversized question.
	ErrInvalidMessage = errors.New("invalid message")
)

// Replies used when an endpoint answers without content.
const (
	FallbackReply          = "Sorry, I couldn't understand that."
	FallbackRecommendation = "No recommendations available."
)
