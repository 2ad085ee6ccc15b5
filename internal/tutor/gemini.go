package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"github.com/dsaprep/backend/internal/domain/sheet"
)

// GeminiTutor implements Tutor using the Google Gemini SDK.
type GeminiTutor struct {
	client *genai.Client
	model  string
}

// Compile-time check: *GeminiTutor satisfies the Tutor interface.
var _ Tutor = (*GeminiTutor)(nil)

// NewGeminiTutor creates a tutor backed by the Gemini API.
func NewGeminiTutor(ctx context.Context, apiKey, model string) (*GeminiTutor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiTutor{
		client: client,
		model:  model,
	}, nil
}

// codeLike matches submissions that are code rather than a question, so
// chat can switch from tutoring to fixing.
var codeLike = regexp.MustCompile(`(?i)#include|int\s+main|class\s+\w+|def\s+\w+|func\s+\w+|function\s*\(`)

// Chat continues the conversation. The system prompt is chosen from the
// latest user message: pasted code gets the fixer, anything else the
// DSA tutor.
func (g *GeminiTutor) Chat(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", &TutorError{Reason: "empty conversation"}
	}

	system := tutorSystemPrompt
	if codeLike.MatchString(messages[len(messages)-1].Content) {
		system = codeFixSystemPrompt
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, buildContents(messages), config)
	if err != nil {
		return "", &TutorError{Reason: "chat generation failed", Wrapped: err}
	}

	reply := result.Text()
	if reply == "" {
		return "", &TutorError{Reason: "model returned empty reply"}
	}
	return reply, nil
}

// GenerateQuestion asks for a single interview question, plain text.
func (g *GeminiTutor) GenerateQuestion(ctx context.Context, topic string, difficulty sheet.Difficulty) (string, error) {
	prompt := fmt.Sprintf(`Generate a %s difficulty coding interview question about %s.
Return only the question text with no additional formatting or explanation.`,
		strings.ToLower(string(difficulty)), topic)

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", &TutorError{Reason: "question generation failed", Wrapped: err}
	}

	question := strings.TrimSpace(result.Text())
	if question == "" {
		return "", &TutorError{Reason: "model returned empty question"}
	}
	return question, nil
}

// EvaluateSolution grades a solution and returns the structured verdict.
func (g *GeminiTutor) EvaluateSolution(ctx context.Context, question, code string) (*Evaluation, error) {
	prompt := fmt.Sprintf(`Act as a senior coding interview expert. Evaluate this solution:

Question: %s
Code: %s

Provide JSON response with these EXACT keys:
{
  "correctness": 0-100,
  "timeComplexity": "Big O notation",
  "spaceComplexity": "Big O notation",
  "feedback": "concise technical analysis",
  "suggestions": ["improvement", ...]
}

Rules:
1. Return ONLY valid JSON without markdown
2. No extra text outside JSON
3. Use double quotes for strings
4. Validate time/space complexity strictly`, question, code)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, &TutorError{Reason: "evaluation failed", Wrapped: err}
	}

	jsonStr := extractJSON(result.Text())
	if jsonStr == "" {
		return nil, &TutorError{Reason: "no JSON object found in model response"}
	}

	var eval Evaluation
	if err := json.Unmarshal([]byte(jsonStr), &eval); err != nil {
		return nil, &TutorError{Reason: "invalid JSON from model", Wrapped: err}
	}

	if eval.Correctness < 0 {
		eval.Correctness = 0
	}
	if eval.Correctness > 100 {
		eval.Correctness = 100
	}
	return &eval, nil
}

func buildContents(msgs []Message) []*genai.Content {
	out := make([]*genai.Content, len(msgs))
	for i, m := range msgs {
		role := "user"
		if m.Role == RoleModel {
			role = "model"
		}
		out[i] = &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		}
	}
	return out
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSON finds the outermost JSON object in a string. It handles
// nested braces correctly and skips braces inside quoted strings, so
// markdown fences around the object don't matter.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == '{' {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == '}' {
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// ============================================================================
// System prompts
// ============================================================================

const tutorSystemPrompt = `You are a highly skilled DSA (Data Structures and Algorithms) tutor. When given a question, follow these instructions carefully:

1. **Understand the Problem**: Rephrase the question in simple terms so it's easy to understand.
2. **Brute-force Solution**: Explain the naive logic step-by-step, then provide code with comments and time/space complexity.
3. **Optimized Solution**: Explain the optimized approach step-by-step, clearly describing how and why it's better, then provide the optimized code with comments and time/space complexity.
4. **Edge Cases**: Mention common pitfalls or tricky scenarios to consider.
5. Ensure all code is well-commented and explanations are beginner-friendly.`

const codeFixSystemPrompt = `You are a helpful and precise coding assistant. The user has submitted code that may have issues (compilation errors, logic bugs, or inefficiencies). Your job is to:

1. Identify and fix the issues in the code.
2. Apply only minimal necessary changes to make it correct and efficient.
3. Explain briefly what was wrong and how you fixed it.
4. Return the corrected code with proper comments.`
