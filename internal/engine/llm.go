package engine

import (
	"context"
	"encoding/json"
	"strings"
)

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured temperature and max_tokens.
// Honors the global rate limit when one is configured.
func CallLLM(ctx context.Context, system, prompt string) (string, error) {
	if llmLimiter != nil {
		if err := llmLimiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	metrics.LLMCalls.Add(1)
	resp, err := cfg.LLMClient.Complete(ctx, system, prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(resp), nil
}

// GenerateJSON sends a prompt and parses the response as JSON into T.
// On parse failure returns (nil, raw, nil) so callers can decide how to
// degrade; an error is returned only when the model call itself failed.
func GenerateJSON[T any](ctx context.Context, system, prompt string) (*T, string, error) {
	raw, err := CallLLM(ctx, system, prompt)
	if err != nil {
		return nil, "", err
	}

	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		if block := ExtractJSONBlock(raw); block != "" {
			if err := json.Unmarshal([]byte(block), &out); err == nil {
				return &out, "", nil
			}
		}
		return nil, raw, nil
	}
	return &out, "", nil
}

// ExtractJSONBlock salvages the first balanced JSON object or array from
// text that wraps it in prose. Returns "" when no balanced block exists.
func ExtractJSONBlock(raw string) string {
	start := -1
	var open, close byte
	for i := 0; i < len(raw); i++ {
		if raw[i] == '{' || raw[i] == '[' {
			start = i
			open = raw[i]
			if open == '{' {
				close = '}'
			} else {
				close = ']'
			}
			break
		}
	}
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}
	return ""
}
