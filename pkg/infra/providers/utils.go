package providers

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type requestIDKey struct{}

// WithRequestID attaches the inbound request id so completion ids can be
// correlated with access logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// CompletionID builds an id for providers whose API does not return one.
func CompletionID(ctx context.Context, provider string) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return fmt.Sprintf("%s-%s", provider, id)
	}
	return fmt.Sprintf("%s-%d", provider, time.Now().UnixNano())
}

func FormatInstructions(instr []string) string {
	var b strings.Builder
	b.WriteString("[Instructions]\n")
	for _, rule := range instr {
		if strings.TrimSpace(rule) == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(rule)
		b.WriteByte('\n')
	}
	return b.String()
}

// StripCodeFence removes a markdown fence some models wrap around JSON.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
