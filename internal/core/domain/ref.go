package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// RefSeparator joins a node name and a socket name in the string form of an OutputRef.
const RefSeparator = "::"

// OutputRef identifies one output socket of one node. It is comparable and is used
// directly as a map key; the "node::socket" form only exists at serialization boundaries.
type OutputRef struct {
	Node   NodeName
	Socket string
}

// NewOutputRef builds a reference from its two components.
func NewOutputRef(node, socket string) OutputRef {
	return OutputRef{Node: NewNodeName(node), Socket: socket}
}

// ParseOutputRef parses the "node::socket" form. The string must split into exactly
// two non-empty parts.
func ParseOutputRef(s string) (OutputRef, error) {
	parts := strings.Split(s, RefSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return OutputRef{}, zerr.With(zerr.Wrap(ErrMalformedReference, "cannot parse reference"), "ref", s)
	}
	return NewOutputRef(parts[0], parts[1]), nil
}

// String returns the "node::socket" form.
func (r OutputRef) String() string {
	return r.Node.String() + RefSeparator + r.Socket
}

// MarshalText implements encoding.TextMarshaler.
func (r OutputRef) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *OutputRef) UnmarshalText(text []byte) error {
	parsed, err := ParseOutputRef(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
