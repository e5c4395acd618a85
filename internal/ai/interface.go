package ai

import (
	"context"
	"errors"
)

// ErrNoProvider is returned when every provider in a cascade has failed.
var ErrNoProvider = errors.New("no ai provider produced a response")

// Provider defines the contract for interacting with AI text models.
// Itinerary generation only needs free-text completion; all structure is
// recovered downstream by the response parser.
type Provider interface {
	// GenerateText sends a prompt to the model and returns the raw reply text.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// Name identifies the provider in logs.
	Name() string
}
