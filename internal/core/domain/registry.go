package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Registry records which domain owns each node. Membership is fixed when a node is
// registered, so dispatch never has to probe the node systems at call time.
type Registry struct {
	domains map[NodeName]Domain
	order   []NodeName
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		domains: make(map[NodeName]Domain),
	}
}

// Add registers name as owned by d.
// It returns an error if the name is already registered.
func (r *Registry) Add(name NodeName, d Domain) error {
	if existing, exists := r.domains[name]; exists {
		return zerr.With(
			zerr.With(zerr.Wrap(ErrNodeAlreadyExists, "cannot register node"), "node", name.String()),
			"domain", existing.String(),
		)
	}
	r.domains[name] = d
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the owning domain of name, or DomainUnknown.
func (r *Registry) Lookup(name NodeName) (Domain, bool) {
	d, ok := r.domains[name]
	return d, ok
}

// Len returns the number of registered nodes.
func (r *Registry) Len() int {
	return len(r.order)
}

// Walk yields registered nodes in registration order.
func (r *Registry) Walk() iter.Seq2[NodeName, Domain] {
	return func(yield func(NodeName, Domain) bool) {
		for _, name := range r.order {
			if !yield(name, r.domains[name]) {
				return
			}
		}
	}
}
