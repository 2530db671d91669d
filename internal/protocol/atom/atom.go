// Package atom holds the validated IMAP atom token consumed by the
// command vocabulary.
package atom

import (
	"io"
)

// Atom is a non-empty run of ATOM-CHAR. Case is preserved.
type Atom struct {
	s string
}

// New validates s and returns it as an Atom.
func New(s string) (Atom, error) {
	if s == "" {
		return Atom{}, ErrEmpty
	}
	for i := 0; i < len(s); i++ {
		if !IsAtomChar(s[i]) {
			return Atom{}, InvalidCharError{Pos: i, Char: s[i]}
		}
	}
	return Atom{s: s}, nil
}

// MustNew is New for literals. It panics on invalid input.
func MustNew(s string) Atom {
	a, err := New(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IsAtomChar reports whether b is a CHAR outside atom-specials.
func IsAtomChar(b byte) bool {
	if b <= 0x1f || b >= 0x7f {
		return false
	}
	switch b {
	case '(', ')', '{', ' ', '%', '*', '"', '\\', ']':
		return false
	}
	return true
}

func (a Atom) String() string { return a.s }

// Bytes returns a copy of the atom's bytes.
func (a Atom) Bytes() []byte { return []byte(a.s) }

func (a Atom) IsZero() bool { return a.s == "" }

// Encode writes the atom unmodified.
func (a Atom) Encode(w io.Writer) error {
	_, err := io.WriteString(w, a.s)
	return err
}
