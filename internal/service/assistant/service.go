package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/staffledger/hrpay-backend-go/internal/domain/assistant"
	"github.com/staffledger/hrpay-backend-go/internal/pkg/textgen"
)

// modelAttempts bounds how many times one request hits the external
// model before degrading to the template catalog.
const modelAttempts = 2

type AssistantServiceImpl struct {
	generator textgen.Generator
	timeout   time.Duration
}

// NewAssistantService wires HR text generation. A nil generator keeps
// the service fully functional on the built-in template catalog.
func NewAssistantService(generator textgen.Generator, timeout time.Duration) assistant.AssistantService {
	return &AssistantServiceImpl{
		generator: generator,
		timeout:   timeout,
	}
}

// GenerateText implements assistant.AssistantService.
func (s *AssistantServiceImpl) GenerateText(ctx context.Context, req assistant.GenerateRequest) (assistant.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return assistant.GenerateResponse{}, err
	}

	switch req.RequestType {
	case assistant.RequestTypeEmailTemplate, assistant.RequestTypePolicy, assistant.RequestTypeFormulaSuggestion:
	default:
		return assistant.GenerateResponse{}, assistant.ErrUnsupportedRequestType
	}

	if s.generator != nil {
		text, err := s.fromModel(ctx, req)
		if err == nil {
			return assistant.GenerateResponse{
				RequestType:   req.RequestType,
				GeneratedText: text,
				Source:        assistant.SourceModel,
			}, nil
		}
		slog.Warn("Text generation model failed, falling back to templates", "request_type", req.RequestType, "error", err)
	}

	return assistant.GenerateResponse{
		RequestType:   req.RequestType,
		GeneratedText: fromTemplates(req),
		Source:        assistant.SourceTemplate,
	}, nil
}

// fromModel asks the external model, retrying once. Each attempt runs
// under its own timeout.
func (s *AssistantServiceImpl) fromModel(ctx context.Context, req assistant.GenerateRequest) (string, error) {
	prompt := buildPrompt(req)

	var lastErr error
	for attempt := 0; attempt < modelAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", assistant.ErrUpstreamUnavailable, err)
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
		text, err := s.generator.Generate(attemptCtx, prompt)
		cancel()

		if err == nil {
			return strings.TrimSpace(text), nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("%w: %v", assistant.ErrUpstreamUnavailable, lastErr)
}

// buildPrompt shapes the request into an instruction for the model,
// mirroring what the template catalog produces for each type.
func buildPrompt(req assistant.GenerateRequest) string {
	var b strings.Builder

	switch req.RequestType {
	case assistant.RequestTypeEmailTemplate:
		b.WriteString("Draft a professional HR email for the following request. ")
		b.WriteString("Start with a subject line, address the employee as [Employee Name], and sign off as the HR Team. ")
	case assistant.RequestTypePolicy:
		b.WriteString("Draft a concise HR policy document for the following request. ")
		b.WriteString("Title it as a draft and lay out the rules as a numbered list. ")
	case assistant.RequestTypeFormulaSuggestion:
		b.WriteString("Suggest a payroll calculation formula for the following request. ")
		b.WriteString("State the formula first, then a short worked example if helpful. ")
	}

	b.WriteString("Reply with the finished text only, no preamble.\n\nRequest: ")
	b.WriteString(strings.TrimSpace(req.Context))

	if req.AdditionalInfo != nil {
		if extra := strings.TrimSpace(*req.AdditionalInfo); extra != "" {
			b.WriteString("\nAdditional details: ")
			b.WriteString(extra)
		}
	}

	return b.String()
}
