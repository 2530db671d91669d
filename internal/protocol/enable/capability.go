// Package enable models the capability values carried by the IMAP ENABLE
// command (RFC 5161) and their wire encoding.
package enable

import (
	"strings"

	"github.com/danmuck/imapenable/internal/protocol/atom"
	"github.com/rs/zerolog/log"
)

// Utf8Kind selects one of the RFC 6855 UTF-8 capabilities.
type Utf8Kind uint8

const (
	Utf8Accept Utf8Kind = iota + 1
	Utf8Only
)

var utf8Literals = map[Utf8Kind]string{
	Utf8Accept: "UTF8=ACCEPT",
	Utf8Only:   "UTF8=ONLY",
}

// reserved maps the lowercase form of every reserved capability name to its kind.
// Recognize and TryOther both consult it.
var reserved = map[string]Utf8Kind{
	"utf8=accept": Utf8Accept,
	"utf8=only":   Utf8Only,
}

func (k Utf8Kind) String() string {
	if s, ok := utf8Literals[k]; ok {
		return s
	}
	return "UTF8=?"
}

func (k Utf8Kind) valid() bool {
	_, ok := utf8Literals[k]
	return ok
}

// CapabilityEnable is either a UTF8 variant or a generic capability.
// Values compare with ==.
type CapabilityEnable struct {
	utf8  Utf8Kind
	other CapabilityEnableOther
}

// CapabilityEnableOther is a capability name that is not reserved.
// It can only be built by TryOther or Recognize.
type CapabilityEnableOther struct {
	name atom.Atom
}

func Utf8(kind Utf8Kind) CapabilityEnable {
	return CapabilityEnable{utf8: kind}
}

func Other(other CapabilityEnableOther) CapabilityEnable {
	return CapabilityEnable{other: other}
}

func (c CapabilityEnable) Utf8Kind() (Utf8Kind, bool) {
	return c.utf8, c.utf8 != 0
}

func (c CapabilityEnable) Other() (CapabilityEnableOther, bool) {
	return c.other, c.utf8 == 0 && !c.other.name.IsZero()
}

func (c CapabilityEnable) IsUtf8() bool { return c.utf8 != 0 }

func (c CapabilityEnable) valid() bool {
	if c.utf8 != 0 {
		return c.utf8.valid()
	}
	return !c.other.name.IsZero()
}

func (c CapabilityEnable) String() string {
	if c.utf8 != 0 {
		return c.utf8.String()
	}
	return c.other.name.String()
}

// Atom returns the wrapped token with its original casing.
func (o CapabilityEnableOther) Atom() atom.Atom { return o.name }

func (o CapabilityEnableOther) String() string { return o.name.String() }

func reservedKind(a atom.Atom) (Utf8Kind, bool) {
	kind, ok := reserved[strings.ToLower(a.String())]
	return kind, ok
}

// IsReserved reports whether a names a reserved capability, ignoring ASCII case.
func IsReserved(a atom.Atom) bool {
	_, ok := reservedKind(a)
	return ok
}

// Recognize classifies a. It never fails: reserved names become the UTF8
// variant, everything else is wrapped as Other. a must come from atom.New;
// the zero Atom yields a value Encode rejects.
func Recognize(a atom.Atom) CapabilityEnable {
	if kind, ok := reservedKind(a); ok {
		return Utf8(kind)
	}
	return Other(CapabilityEnableOther{name: a})
}

// TryOther wraps a as a generic capability and rejects reserved names.
func TryOther(a atom.Atom) (CapabilityEnableOther, error) {
	if a.IsZero() {
		return CapabilityEnableOther{}, atom.ErrEmpty
	}
	if IsReserved(a) {
		log.Debug().Str("capability", a.String()).Msg("enable.TryOther reserved name rejected")
		return CapabilityEnableOther{}, ReservedError{Name: a.String()}
	}
	return CapabilityEnableOther{name: a}, nil
}

// Parse validates s as an atom and recognizes it.
func Parse(s string) (CapabilityEnable, error) {
	a, err := atom.New(s)
	if err != nil {
		return CapabilityEnable{}, err
	}
	return Recognize(a), nil
}

// ParseOther validates s as an atom and requires it to be non-reserved.
func ParseOther(s string) (CapabilityEnableOther, error) {
	a, err := atom.New(s)
	if err != nil {
		return CapabilityEnableOther{}, err
	}
	return TryOther(a)
}
