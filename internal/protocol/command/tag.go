package command

import (
	"fmt"
	"io"

	"github.com/danmuck/imapenable/internal/protocol/atom"
)

// Tag is a command tag: one or more ASTRING-CHAR other than "+".
type Tag struct {
	s string
}

func NewTag(s string) (Tag, error) {
	if s == "" {
		return Tag{}, fmt.Errorf("%w: empty", ErrInvalidTag)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '+' || !(atom.IsAtomChar(c) || c == ']') {
			return Tag{}, fmt.Errorf("%w: char %q at position %d", ErrInvalidTag, c, i)
		}
	}
	return Tag{s: s}, nil
}

func MustTag(s string) Tag {
	t, err := NewTag(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tag) String() string { return t.s }

func (t Tag) encode(w io.Writer) error {
	if t.s == "" {
		return ErrInvalidTag
	}
	_, err := io.WriteString(w, t.s)
	return err
}
