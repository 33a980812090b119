package i

import (
	"time"
)

// Tokenizer signs and verifies bearer tokens.
type Tokenizer interface {
	// Generate creates a token carrying claims that expires after ttl.
	Generate(claims map[string]interface{}, ttl time.Duration) (string, error)

	// Decode validates a token and returns its claims.
	// Expired or tampered tokens return an error.
	Decode(token string) (map[string]interface{}, error)
}
