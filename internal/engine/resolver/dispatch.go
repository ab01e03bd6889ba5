package resolver

import (
	"iter"

	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/zerr"
)

// AddNode creates a node of nodeType in whichever system provides the type and
// records the node's domain. The managed system is asked first.
func (r *Resolver) AddNode(nodeType string, name domain.NodeName) error {
	if _, err := domain.ParseNodeName(name.String()); err != nil {
		return err
	}
	if d, ok := r.nodes.Lookup(name); ok {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrNodeAlreadyExists, "cannot add node"),
			"node", name.String()), "domain", d.String())
	}

	var d domain.Domain
	switch {
	case r.managed.OwnsType(nodeType):
		d = domain.DomainManaged
	case r.native.OwnsType(nodeType):
		d = domain.DomainNative
	default:
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownNodeType, "cannot add node"),
			"type", nodeType), "node", name.String())
	}

	if err := r.system(d).CreateNode(nodeType, name); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to create node"), "node", name.String()), "type", nodeType)
	}
	return r.nodes.Add(name, d)
}

// InitNode forwards to the owning system.
func (r *Resolver) InitNode(name domain.NodeName) error {
	d, err := r.domainOf(name)
	if err != nil {
		return err
	}
	return r.system(d).InitNode(name)
}

// SetInput wires input key of name to src in the owning system.
func (r *Resolver) SetInput(name domain.NodeName, key string, src domain.OutputRef) error {
	d, err := r.domainOf(name)
	if err != nil {
		return err
	}
	return r.system(d).SetInput(name, key, src)
}

// SetParam sets parameter key of name in the owning system.
func (r *Resolver) SetParam(name domain.NodeName, key string, value any) error {
	d, err := r.domainOf(name)
	if err != nil {
		return err
	}
	return r.system(d).SetParam(name, key, value)
}

// DumpDescriptors lists managed descriptors followed by native ones.
func (r *Resolver) DumpDescriptors() []domain.Descriptor {
	managed := r.managed.Descriptors()
	native := r.native.Descriptors()
	out := make([]domain.Descriptor, 0, len(managed)+len(native))
	out = append(out, managed...)
	return append(out, native...)
}

// DomainOf returns the domain that owns name.
func (r *Resolver) DomainOf(name domain.NodeName) (domain.Domain, error) {
	return r.domainOf(name)
}

// Nodes yields the nodes known to the resolver in registration order.
func (r *Resolver) Nodes() iter.Seq2[domain.NodeName, domain.Domain] {
	return r.nodes.Walk()
}

// domainOf looks name up in the registry. Nodes created directly in a node system
// are adopted on first use by asking both systems; the answer is then fixed.
func (r *Resolver) domainOf(name domain.NodeName) (domain.Domain, error) {
	if d, ok := r.nodes.Lookup(name); ok {
		return d, nil
	}

	managed := r.managed.OwnsNode(name)
	native := r.native.OwnsNode(name)

	var d domain.Domain
	switch {
	case managed && native:
		return domain.DomainUnknown, zerr.With(zerr.Wrap(domain.ErrDomainConflict, "cannot dispatch node"), "node", name.String())
	case managed:
		d = domain.DomainManaged
	case native:
		d = domain.DomainNative
	default:
		return domain.DomainUnknown, zerr.With(zerr.Wrap(domain.ErrUnknownNode, "cannot dispatch node"), "node", name.String())
	}

	if err := r.nodes.Add(name, d); err != nil {
		return domain.DomainUnknown, err
	}
	return d, nil
}

func (r *Resolver) system(d domain.Domain) ports.NodeSystem {
	if d == domain.DomainManaged {
		return r.managed
	}
	return r.native
}
