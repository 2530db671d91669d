package enable

import (
	"bytes"
	"io"
)

// Encode writes the canonical wire form of c to w. UTF8 variants are
// written in their fixed uppercase spelling; Other keeps its bytes.
func Encode(w io.Writer, c CapabilityEnable) error {
	if !c.valid() {
		return ErrInvalidCapability
	}
	if c.utf8 != 0 {
		_, err := io.WriteString(w, utf8Literals[c.utf8])
		return err
	}
	return EncodeOther(w, c.other)
}

// EncodeOther writes the wrapped atom unmodified.
func EncodeOther(w io.Writer, o CapabilityEnableOther) error {
	if o.name.IsZero() {
		return ErrInvalidCapability
	}
	return o.name.Encode(w)
}

// MarshalText returns the wire form, so text encoders agree with Encode.
func (c CapabilityEnable) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalText parses text through Recognize.
func (c *CapabilityEnable) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
