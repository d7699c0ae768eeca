// Package redact scrubs credential-looking strings from diff text before it
// is embedded in a report that may be shared outside the reviewing team.
package redact

import "regexp"

const placeholder = "[REDACTED]"

// secretPatterns are regex heuristics for secrets that commonly leak through
// committed diffs.
var secretPatterns = []*regexp.Regexp{
	// key/secret/token/password assignments
	regexp.MustCompile(`(?i)(api[_-]?key|secret|token|password|passwd|credential)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{16,})["']?`),
	// AWS access key IDs
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	// Bearer tokens
	regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`),
	// JWTs (three dot-separated base64 segments)
	regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
	// private key blocks
	regexp.MustCompile(`-----BEGIN\s+(RSA\s+)?PRIVATE KEY-----`),
	// GitHub tokens
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`),
}

// Scrub replaces detected secrets in text with [REDACTED]. Line structure is
// preserved so diff line numbering stays intact.
func Scrub(text string) string {
	for _, pat := range secretPatterns {
		text = pat.ReplaceAllString(text, placeholder)
	}
	return text
}
