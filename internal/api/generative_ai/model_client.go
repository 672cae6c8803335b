package generativeAI

import (
	"context"
	"log/slog"
)

const apiErrorPrefix = "An error occurred during API call: "

// DescribeError renders a provider failure the way it is shown to users.
func DescribeError(err error) string {
	return apiErrorPrefix + err.Error()
}

// ModelClient applies the display policy for provider failures on top of a
// Generator: a failed call still yields text, built by DescribeError.
type ModelClient struct {
	generator Generator
	logger    *slog.Logger
}

func NewModelClient(generator Generator, logger *slog.Logger) *ModelClient {
	return &ModelClient{
		generator: generator,
		logger:    logger,
	}
}

func (m *ModelClient) Model() string {
	return m.generator.Model()
}

// Generate returns the model text. When the call fails the returned text is
// the described error and err is the original failure.
func (m *ModelClient) Generate(ctx context.Context, prompt string) (string, error) {
	text, err := m.generator.GenerateContent(ctx, prompt, nil)
	if err != nil {
		m.logger.WarnContext(ctx, "Model call failed, returning error as itinerary text",
			slog.String("model", m.generator.Model()),
			slog.Any("error", err))
		return DescribeError(err), err
	}
	return text, nil
}
