// Package domain contains the core value types of the node graph: node names, output
// references, domain membership, descriptors and playback state.
package domain

// Domain names one of the two independent node-execution systems.
type Domain uint8

const (
	// DomainUnknown is the zero value; no node system owns the node.
	DomainUnknown Domain = iota
	// DomainManaged is the managed (scripting) node system.
	DomainManaged
	// DomainNative is the native (compiled) node system.
	DomainNative
)

// String returns the lowercase domain name.
func (d Domain) String() string {
	switch d {
	case DomainManaged:
		return "managed"
	case DomainNative:
		return "native"
	default:
		return "unknown"
	}
}

// BridgeDirection is the direction an object is copied across domains.
type BridgeDirection uint8

const (
	// ManagedToNative copies a managed object into the native system.
	ManagedToNative BridgeDirection = iota + 1
	// NativeToManaged copies a native object into the managed system.
	NativeToManaged
)

// String returns a short label used in logs and metrics.
func (d BridgeDirection) String() string {
	switch d {
	case ManagedToNative:
		return "managed_to_native"
	case NativeToManaged:
		return "native_to_managed"
	default:
		return "unknown"
	}
}

// Descriptor is the schema of a node type: its sockets, parameters and categories.
type Descriptor struct {
	Type       string   `json:"type" yaml:"type"`
	Domain     string   `json:"domain" yaml:"domain"`
	Inputs     []string `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs    []string `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Params     []string `json:"params,omitempty" yaml:"params,omitempty"`
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}
