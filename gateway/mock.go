package gateway

import (
	"context"
	"strings"
)

// MockGenerator is a scripted Generator for testing. Responses are consumed
// in order; when the script runs out the Response field is returned. An
// entry with a non-nil Err fails that call.
type MockGenerator struct {
	Script      []MockResult // consumed front to back
	Response    string       // fallback response once Script is empty
	CallCount   int          // number of Generate calls
	LastPrompt  string       // prompt of the most recent call
	LastMaxTok  int          // maxTokens of the most recent call
	PromptsSeen []string     // every prompt, in order
}

// MockResult is one scripted Generate outcome.
type MockResult struct {
	Text string
	Err  error
}

// Generate implements Generator.
func (m *MockGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.CallCount++
	m.LastPrompt = prompt
	m.LastMaxTok = maxTokens
	m.PromptsSeen = append(m.PromptsSeen, prompt)

	if len(m.Script) > 0 {
		next := m.Script[0]
		m.Script = m.Script[1:]
		if next.Err != nil {
			return "", next.Err
		}
		return next.Text, nil
	}
	return m.Response, nil
}

// Reset clears call tracking but keeps the script.
func (m *MockGenerator) Reset() {
	m.CallCount = 0
	m.LastPrompt = ""
	m.LastMaxTok = 0
	m.PromptsSeen = nil
}

// EchoTranslation builds a marker-framed response that pretends title and
// description were translated, handy for pipeline tests.
func EchoTranslation(title, desc string) string {
	var b strings.Builder
	b.WriteString("TRANSLATED_TITLE: ")
	b.WriteString(title)
	b.WriteString("\nTRANSLATED_DESCRIPTION: ")
	b.WriteString(desc)
	return b.String()
}

// Verify MockGenerator implements Generator
var _ Generator = (*MockGenerator)(nil)
