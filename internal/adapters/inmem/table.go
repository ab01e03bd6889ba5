// Package inmem provides in-process node systems for both domains. Each system is a
// table of kernels keyed by node type plus the nodes and objects created from them.
package inmem

import (
	"maps"
	"slices"
	"sync"

	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/zerr"
)

// Kernel computes a node's outputs from its resolved inputs and parameters.
type Kernel func(inputs, params map[string]any) (map[string]any, error)

// Type couples a kernel with the descriptor advertised for it.
type Type struct {
	Descriptor domain.Descriptor
	Run        Kernel
}

type node struct {
	typ         string
	params      map[string]any
	inputs      map[string]domain.OutputRef
	initialized bool
}

// table holds the state shared by both node systems. Object values are stored as
// given; the systems decide their representation.
type table struct {
	mu      sync.RWMutex
	domain  domain.Domain
	types   map[string]Type
	nodes   map[domain.NodeName]*node
	objects map[domain.OutputRef]any
}

func newTable(d domain.Domain, types []Type) *table {
	t := &table{
		domain:  d,
		types:   make(map[string]Type, len(types)),
		nodes:   make(map[domain.NodeName]*node),
		objects: make(map[domain.OutputRef]any),
	}
	for _, typ := range types {
		t.register(typ)
	}
	return t
}

func (t *table) register(typ Type) {
	typ.Descriptor.Domain = t.domain.String()
	t.mu.Lock()
	t.types[typ.Descriptor.Type] = typ
	t.mu.Unlock()
}

func (t *table) OwnsType(nodeType string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.types[nodeType]
	return ok
}

func (t *table) OwnsNode(name domain.NodeName) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.nodes[name]
	return ok
}

func (t *table) CreateNode(nodeType string, name domain.NodeName) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.types[nodeType]; !ok {
		return zerr.With(zerr.Wrap(domain.ErrUnknownNodeType, "cannot create node"), "type", nodeType)
	}
	if _, exists := t.nodes[name]; exists {
		return zerr.With(zerr.Wrap(domain.ErrNodeAlreadyExists, "cannot create node"), "node", name.String())
	}
	t.nodes[name] = &node{
		typ:    nodeType,
		params: make(map[string]any),
		inputs: make(map[string]domain.OutputRef),
	}
	return nil
}

// InitNode drops any outputs left from an earlier evaluation.
func (t *table) InitNode(name domain.NodeName) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, err := t.node(name)
	if err != nil {
		return err
	}
	for _, socket := range t.types[n.typ].Descriptor.Outputs {
		delete(t.objects, domain.OutputRef{Node: name, Socket: socket})
	}
	n.initialized = true
	return nil
}

func (t *table) SetInput(name domain.NodeName, key string, src domain.OutputRef) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, err := t.node(name)
	if err != nil {
		return err
	}
	if !slices.Contains(t.types[n.typ].Descriptor.Inputs, key) {
		return socketError(name, "input", key)
	}
	n.inputs[key] = src
	return nil
}

func (t *table) SetParam(name domain.NodeName, key string, value any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	n, err := t.node(name)
	if err != nil {
		return err
	}
	if !slices.Contains(t.types[n.typ].Descriptor.Params, key) {
		return socketError(name, "param", key)
	}
	n.params[key] = value
	return nil
}

func (t *table) GetObject(ref domain.OutputRef) (any, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	obj, ok := t.objects[ref]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "cannot read object"),
			"ref", ref.String()), "domain", t.domain.String())
	}
	return obj, nil
}

func (t *table) setObject(ref domain.OutputRef, value any) {
	t.mu.Lock()
	t.objects[ref] = value
	t.mu.Unlock()
}

// Descriptors returns the registered types sorted by name.
func (t *table) Descriptors() []domain.Descriptor {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]domain.Descriptor, 0, len(t.types))
	for _, typeName := range slices.Sorted(maps.Keys(t.types)) {
		out = append(out, t.types[typeName].Descriptor)
	}
	return out
}

// snapshot copies what an evaluation needs so kernels and input resolution run
// without holding the lock.
func (t *table) snapshot(name domain.NodeName) (Type, map[string]any, map[string]domain.OutputRef, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n, err := t.node(name)
	if err != nil {
		return Type{}, nil, nil, err
	}
	return t.types[n.typ], maps.Clone(n.params), maps.Clone(n.inputs), nil
}

// node must be called with the lock held.
func (t *table) node(name domain.NodeName) (*node, error) {
	n, ok := t.nodes[name]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownNode, "node not found"),
			"node", name.String()), "domain", t.domain.String())
	}
	return n, nil
}

func socketError(name domain.NodeName, kind, key string) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownSocket, "cannot wire node"),
		"node", name.String()), kind, key)
}

// sortedInputs returns the wired input keys in order.
func sortedInputs(inputs map[string]domain.OutputRef) []string {
	return slices.Sorted(maps.Keys(inputs))
}

// connected reports an error for every declared input that is not wired.
func connected(name domain.NodeName, typ Type, inputs map[string]domain.OutputRef) error {
	for _, key := range typ.Descriptor.Inputs {
		if _, ok := inputs[key]; !ok {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrObjectNotFound, "input not connected"),
				"node", name.String()), "input", key)
		}
	}
	return nil
}
