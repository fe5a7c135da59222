package plangen

import (
	"errors"
	"regexp"
	"strings"
)

// ErrMalformedResponse means no JSON object span could be located in the
// model output. Non-fatal to callers: it feeds the retry/fallback path.
var ErrMalformedResponse = errors.New("malformed generation response: no JSON object found")

var (
	fenceRe         = regexp.MustCompile("```[a-zA-Z]*")
	trailingCommaRe = regexp.MustCompile(`,\s*([\]}])`)
)

// Sanitize coerces raw model output toward parseable JSON: strips fenced
// code-block delimiters, slices to the outermost {...} span, and removes
// trailing commas before a closing bracket. The output is untrusted repair
// work; callers must still parse and validate it.
func Sanitize(raw string) (string, error) {
	cleaned := fenceRe.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrMalformedResponse
	}
	cleaned = cleaned[start : end+1]

	cleaned = trailingCommaRe.ReplaceAllString(cleaned, "$1")
	return cleaned, nil
}
