package scenario

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidIdentity is returned when a scenario title cannot be
// turned into a usable artifact namespace.
var ErrInvalidIdentity = errors.New("invalid scenario identity")

// Identity is the filesystem-safe name of a scenario. It is used
// as the file or directory name of every artifact the scenario
// produces, so two scenarios running at the same time must not
// share one.
type Identity string

// NewIdentity derives an Identity from a human scenario title.
// Whitespace runs become a single "-", letters are lower-cased and
// anything outside [a-z0-9._-] is dropped.
func NewIdentity(title string) (Identity, error) {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.TrimSpace(title) {
		switch {
		case unicode.IsSpace(r):
			pendingDash = true
			continue
		case r >= 'A' && r <= 'Z':
			r = unicode.ToLower(r)
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
		default:
			continue
		}
		if pendingDash && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingDash = false
		b.WriteRune(r)
	}

	id := Identity(b.String())
	if err := id.Validate(); err != nil {
		return "", fmt.Errorf("title %q: %w", title, err)
	}
	return id, nil
}

// Validate checks that the identity can safely be used as a single
// path element.
func (id Identity) Validate() error {
	s := string(id)
	switch {
	case s == "", s == ".", s == "..":
		return ErrInvalidIdentity
	case strings.ContainsAny(s, `/\`):
		return ErrInvalidIdentity
	}
	return nil
}

// WithSuffix returns the identity with "-suffix" appended. Harnesses
// that run scenarios concurrently use it to keep identities unique,
// typically with a pickle or example id.
func (id Identity) WithSuffix(suffix string) (Identity, error) {
	if suffix == "" {
		return id, nil
	}
	return NewIdentity(string(id) + " " + suffix)
}

// String returns the identity as a plain string.
func (id Identity) String() string {
	return string(id)
}
