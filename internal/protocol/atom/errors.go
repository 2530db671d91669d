package atom

import (
	"errors"
	"fmt"
)

var (
	ErrInvalid = errors.New("atom: invalid atom")
	ErrEmpty   = errors.New("atom: empty atom")
)

// InvalidCharError reports the first byte that is not an ATOM-CHAR.
type InvalidCharError struct {
	Pos  int
	Char byte
}

func (e InvalidCharError) Error() string {
	return fmt.Sprintf("atom: invalid char %q at position %d", e.Char, e.Pos)
}

func (e InvalidCharError) Is(target error) bool {
	return target == ErrInvalid
}
