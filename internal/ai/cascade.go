package ai

import (
	"context"
	"log"
	"strings"
)

// Cascade tries an ordered list of providers and returns the first usable
// reply. A provider error is logged and the next provider is tried; the
// cascade itself only errors when every provider has failed.
type Cascade struct {
	providers []Provider
}

// NewCascade builds a cascade over the given providers, in priority order.
func NewCascade(providers ...Provider) *Cascade {
	return &Cascade{providers: providers}
}

func (c *Cascade) Name() string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.Name())
	}
	return "cascade[" + strings.Join(names, ",") + "]"
}

func (c *Cascade) GenerateText(ctx context.Context, prompt string) (string, error) {
	for _, p := range c.providers {
		text, err := p.GenerateText(ctx, prompt)
		if err != nil {
			log.Printf("ai: provider %s failed: %v", p.Name(), err)
			continue
		}
		if strings.TrimSpace(text) == "" {
			log.Printf("ai: provider %s returned empty text", p.Name())
			continue
		}
		return text, nil
	}
	return "", ErrNoProvider
}
