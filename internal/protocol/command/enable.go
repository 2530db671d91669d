// Package command builds and encodes the ENABLE command.
package command

import (
	"bytes"
	"io"

	"github.com/danmuck/imapenable/internal/protocol/atom"
	"github.com/danmuck/imapenable/internal/protocol/enable"
	"github.com/danmuck/imapenable/internal/protocol/nonempty"
	"github.com/rs/zerolog/log"
)

// Source is anything Enable can turn into a capability.
type Source interface {
	atom.Atom | enable.CapabilityEnable | enable.CapabilityEnableOther
}

// Body is the ENABLE command payload. It always carries at least one capability.
type Body struct {
	capabilities nonempty.Slice[enable.CapabilityEnable]
}

// Command is a tagged ENABLE line.
type Command struct {
	Tag  Tag
	Body Body
}

// Enable builds a Body from caps in order. Atoms are classified with
// enable.Recognize. An empty caps fails with nonempty.ErrEmpty.
func Enable[S Source](caps []S) (Body, error) {
	converted := make([]enable.CapabilityEnable, 0, len(caps))
	for _, c := range caps {
		converted = append(converted, toCapability(c))
	}
	list, err := nonempty.New(converted)
	if err != nil {
		log.Debug().Err(err).Msg("command.Enable rejected empty capability list")
		return Body{}, err
	}
	log.Trace().Int("capabilities", list.Len()).Msg("command.Enable")
	return Body{capabilities: list}, nil
}

// EnableOf builds a Body from at least one capability.
func EnableOf(first enable.CapabilityEnable, rest ...enable.CapabilityEnable) Body {
	return Body{capabilities: nonempty.Of(first, rest...)}
}

func toCapability[S Source](c S) enable.CapabilityEnable {
	switch v := any(c).(type) {
	case atom.Atom:
		return enable.Recognize(v)
	case enable.CapabilityEnableOther:
		return enable.Other(v)
	default:
		return v.(enable.CapabilityEnable)
	}
}

func (b Body) Capabilities() nonempty.Slice[enable.CapabilityEnable] {
	return b.capabilities
}

// Encode writes "ENABLE" followed by each capability, space separated.
func Encode(w io.Writer, b Body) error {
	if b.capabilities.IsZero() {
		return nonempty.ErrEmpty
	}
	if _, err := io.WriteString(w, "ENABLE"); err != nil {
		return err
	}
	for _, c := range b.capabilities.All() {
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := enable.Encode(w, c); err != nil {
			return err
		}
	}
	return nil
}

// EncodeCommand writes the full CRLF-terminated command line.
func EncodeCommand(w io.Writer, c Command) error {
	if c.Body.capabilities.IsZero() {
		return nonempty.ErrEmpty
	}
	if err := c.Tag.encode(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, " "); err != nil {
		return err
	}
	if err := Encode(w, c.Body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\r\n")
	return err
}

// Detached encodes b into a new buffer.
func Detached(b Body) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
