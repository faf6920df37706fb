package meal

import (
	"context"
	"fmt"

	"github.com/fuelflow/meal-analyzer/llm"
	"github.com/fuelflow/meal-analyzer/logger"
	"github.com/fuelflow/meal-analyzer/prompt"
	"github.com/google/uuid"
)

// ClientFactory builds the API client. It is called once per trigger so that
// credential problems surface as an ordinary analysis failure.
type ClientFactory func() (llm.LLM, error)

// Requester sends the fixed meal analysis request
type Requester struct {
	newClient ClientFactory
}

func NewRequester(newClient ClientFactory) *Requester {
	return &Requester{newClient: newClient}
}

// Analyze builds a client and a fresh request, sends it and returns the outcome.
// Every failure, including a panic inside the client, comes back as llm.Failure.
func (r *Requester) Analyze(ctx context.Context) (result llm.Result) {
	requestID := uuid.New().String()
	logger.Infow("Starting meal analysis", "request_id", requestID)

	defer func() {
		if p := recover(); p != nil {
			result = llm.Failure(fmt.Errorf("analysis aborted: %v", p))
		}
		if result.OK() {
			logger.Infow("Meal analysis finished", "request_id", requestID, "chars", len(result.Text))
		} else {
			logger.Errorf("Meal analysis %s failed: %v", requestID, result.Err)
		}
	}()

	client, err := r.newClient()
	if err != nil {
		return llm.Failure(fmt.Errorf("failed to create client: %w", err))
	}

	return client.Analyze(ctx, prompt.GetMealRequest())
}
