package command

import "errors"

var ErrInvalidTag = errors.New("command: invalid tag")
