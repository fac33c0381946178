package assistant

import (
	"context"
)

// AssistantService defines the HR text generation operation
type AssistantService interface {
	// GenerateText produces HR text for one of the supported request
	// types. When an external model is configured it is tried first,
	// with the local template catalog as fallback; without one the
	// templates answer directly.
	GenerateText(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
}
