package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	jwtPattern    = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)
)

// redactedFields are attribute and struct field names whose values never
// reach a sink. The recipe feed credentials and forwarded auth headers are
// the secrets this service handles.
var redactedFields = []string{
	"api_key",
	"apiKey",
	"APIKey",
	"feed_api_key",
	"authorization",
	"Authorization",
	"password",
	"token",
	"secret",
	"cookie",
}

// RedactOptions returns the masq options every handler is built with.
func RedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(redactedFields)+3)
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr that masks secrets, with extra
// masq options appended to RedactOptions.
func NewReplaceAttr(extra ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(RedactOptions(), extra...)...)
}
