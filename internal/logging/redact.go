package logging

import (
	"io"
	"regexp"
)

// RedactedValue replaces anything that looks like a credential.
const RedactedValue = "[REDACTED]"

// credentialPatterns match the ways Twitch credentials show up in error
// bodies, request dumps and account files.
var credentialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)oauth:[a-z0-9]{20,}`),
	regexp.MustCompile(`(?i)bearer\s+[a-z0-9._-]{20,}`),
	regexp.MustCompile(`(?i)(access_token|refresh_token|client_secret)=[^&\s"]+`),
	// quotes may arrive escaped when a JSON body is itself a JSON log field
	regexp.MustCompile(`(?i)\\?"(access_token|refresh_token|client_secret|user_access_token)\\?"\s*:\s*\\?"[^"\\]*\\?"`),
}

// Redact masks credentials in s.
func Redact(s string) string {
	for _, pattern := range credentialPatterns {
		s = pattern.ReplaceAllString(s, RedactedValue)
	}
	return s
}

// redactWriter scrubs every log line before it reaches the underlying writer.
// zerolog writes one complete event per Write call, so no match spans calls.
type redactWriter struct {
	out io.Writer
}

func (w redactWriter) Write(p []byte) (int, error) {
	if _, err := io.WriteString(w.out, Redact(string(p))); err != nil {
		return 0, err
	}
	return len(p), nil
}
