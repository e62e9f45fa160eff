package llm

import (
	"context"
	"strings"
	"sync"
)

// Fake is a scripted Client for tests. Responses are matched by substring
// of the user prompt; Default covers everything else.
type Fake struct {
	mu sync.Mutex
	// Responses maps a user-prompt substring to the canned completion.
	Responses map[string]string
	// Default is returned when no substring matches.
	Default string
	// Err, when set, is returned from every call.
	Err error

	calls []FakeCall
}

// FakeCall records one Generate invocation.
type FakeCall struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
}

func (f *Fake) Generate(_ context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, FakeCall{SystemPrompt: systemPrompt, UserPrompt: userPrompt, MaxTokens: maxTokens})
	if f.Err != nil {
		return "", f.Err
	}
	for needle, resp := range f.Responses {
		if strings.Contains(userPrompt, needle) {
			return resp, nil
		}
	}
	return f.Default, nil
}

// Calls returns a copy of the recorded invocations.
func (f *Fake) Calls() []FakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]FakeCall, len(f.calls))
	copy(out, f.calls)
	return out
}
