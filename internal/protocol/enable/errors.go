package enable

import (
	"errors"
	"fmt"
)

var (
	ErrReserved          = errors.New("enable: reserved capability name, use the UTF8 variants")
	ErrInvalidCapability = errors.New("enable: invalid capability")
)

// ReservedError names the token that collided with a reserved capability.
type ReservedError struct {
	Name string
}

func (e ReservedError) Error() string {
	return fmt.Sprintf("enable: %q is a reserved capability name, use the UTF8 variants", e.Name)
}

func (e ReservedError) Is(target error) bool {
	return target == ErrReserved
}
