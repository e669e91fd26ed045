package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// New records a stack trace at the call site.
func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err so that Is(err, sentinel) holds without changing its message.
// A nil err yields the sentinel itself.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

// Is also matches marks added by Mark, which the standard library cannot see.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err with its stack and keeps the first maxLines
// non-blank lines; maxLines <= 0 keeps everything.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	var out []string
	for _, line := range strings.Split(fmt.Sprintf("%+v", err), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if maxLines > 0 && len(out) == maxLines {
			break
		}
	}
	return out
}
