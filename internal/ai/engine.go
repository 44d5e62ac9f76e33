package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"

	"github.com/garnizeh/askhub/internal/config"
	"github.com/garnizeh/askhub/pkg/ollama"
)

// answerSchema constrains what we accept back from the model: a JSON object
// with a non-empty answer string.
const answerSchema = `{
  "type": "object",
  "required": ["answer"],
  "properties": {
    "answer": {"type": "string", "minLength": 1}
  }
}`

const promptTemplate = `You are a helpful colleague answering an internal company question.

Question title: %s

Question details: %s

Reply with a JSON object of the form {"answer": "<your answer>"} and nothing else.`

// TextGenerator is the slice of the ollama client the engine needs.
type TextGenerator interface {
	Generate(ctx context.Context, model string, prompt string) (ollama.GenerateResult, error)
}

// Engine turns a question into an answer draft via the configured model and
// validates the model's output before anyone persists it.
type Engine struct {
	client TextGenerator
	cfg    config.EngineConfig
	schema *jsonschema.Schema
}

func NewEngine(client TextGenerator, cfg config.EngineConfig) (*Engine, error) {
	if client == nil {
		return nil, fmt.Errorf("text generator is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("engine model is required")
	}

	schema := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(answerSchema), schema); err != nil {
		return nil, fmt.Errorf("compile answer schema: %w", err)
	}

	return &Engine{client: client, cfg: cfg, schema: schema}, nil
}

// GenerateAnswer implements qa.Generator.
func (e *Engine) GenerateAnswer(ctx context.Context, title, description string) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, title, description)

	res, err := e.client.Generate(ctx, e.cfg.Model, prompt)
	if err != nil {
		return "", fmt.Errorf("model generate: %w", err)
	}

	answer, err := e.parseAnswer(ctx, res.Text)
	if err != nil {
		return "", err
	}

	return answer, nil
}

type answerPayload struct {
	Answer string `json:"answer"`
}

// parseAnswer extracts the answer text from the model output, tolerating
// markdown code fences around the JSON but nothing else.
func (e *Engine) parseAnswer(ctx context.Context, raw string) (string, error) {
	cleaned := stripCodeFence(raw)

	errs, err := e.schema.ValidateBytes(ctx, []byte(cleaned))
	if err != nil {
		return "", fmt.Errorf("model output is not valid JSON: %w", err)
	}
	if len(errs) > 0 {
		return "", fmt.Errorf("model output does not match answer schema: %s", errs[0].Message)
	}

	var p answerPayload
	if err := json.Unmarshal([]byte(cleaned), &p); err != nil {
		return "", fmt.Errorf("decode model output: %w", err)
	}

	answer := strings.TrimSpace(p.Answer)
	if answer == "" {
		return "", fmt.Errorf("model returned an empty answer")
	}

	return answer, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
