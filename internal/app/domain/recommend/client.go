package recommend

import (
	"context"
	"errors"
	"flag"
	"fmt"

	generativeAI "github.com/FACorreiaa/go-genai-sdk/lib"
)

var _ Generator = (*generativeAI.LLMChatClient)(nil)

// ErrMissingAPIKey is returned before the SDK gets a chance to exit the process.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// NewGenerator builds the Gemini client. The SDK reads its model name from the
// "model" flag, so it is set before construction.
func NewGenerator(ctx context.Context, apiKey, model string) (*generativeAI.LLMChatClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model != "" {
		if err := flag.Set("model", model); err != nil {
			return nil, fmt.Errorf("select model %q: %w", model, err)
		}
	}
	client, err := generativeAI.NewLLMChatClient(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}
