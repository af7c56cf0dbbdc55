package ports

import "context"

// ModelClient is the outbound boundary to the external generative model.
// One call per submission; the response is free-form text.
type ModelClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
