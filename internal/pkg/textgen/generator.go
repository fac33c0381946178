// Package textgen provides the narrow text generation seam used by the
// HR assistant. Callers depend only on Generator so the backing model
// can be swapped or removed without touching business logic.
package textgen

import "context"

type Generator interface {
	// Generate returns the model's text for a prompt. Implementations
	// must honor ctx cancellation and return an error for blank replies.
	Generate(ctx context.Context, prompt string) (string, error)
}
