package domain

import (
	"strings"
	"unique"

	"go.trai.ch/zerr"
)

// NodeName identifies a node within a graph. Names are interned, so comparing two
// names is a pointer comparison.
type NodeName struct {
	h unique.Handle[string]
}

// NewNodeName interns s as a node name. It performs no validation; use ParseNodeName
// at input boundaries.
func NewNodeName(s string) NodeName {
	return NodeName{h: unique.Make(s)}
}

// ParseNodeName validates and interns a node name. Names must be non-empty and must
// not contain the reference separator.
func ParseNodeName(s string) (NodeName, error) {
	if s == "" || strings.Contains(s, RefSeparator) {
		return NodeName{}, zerr.With(zerr.Wrap(ErrInvalidNodeName, "cannot use node name"), "node", s)
	}
	return NewNodeName(s), nil
}

// String returns the node name.
func (n NodeName) String() string {
	if n.IsZero() {
		return ""
	}
	return n.h.Value()
}

// IsZero reports whether n was never assigned.
func (n NodeName) IsZero() bool {
	var zero unique.Handle[string]
	return n.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (n NodeName) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NodeName) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
