package inmem

import (
	"context"
	"errors"

	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManagedDomain = (*Managed)(nil)

// Requirer makes the object at ref available as a managed value.
type Requirer func(ctx context.Context, ref domain.OutputRef) error

// Puller copies the object at ref into the managed system when a requirer left it
// missing. This happens when ref was already resolved in the current epoch as a
// native copy.
type Puller func(ctx context.Context, ref domain.OutputRef) error

// Managed is the managed node system. Objects are plain Go values.
//
// Before running a kernel it asks the requirer for each wired input, so producers
// in either domain are evaluated and bridged on demand.
type Managed struct {
	*table
	require Requirer
	pull    Puller
}

// NewManaged creates a managed system with the builtin script kernels and any
// extra types.
func NewManaged(extra ...Type) *Managed {
	return &Managed{table: newTable(domain.DomainManaged, append(managedTypes(), extra...))}
}

// SetRequirer installs the callback used to resolve inputs. Without one, inputs
// must already be present in the system.
func (m *Managed) SetRequirer(fn Requirer) {
	m.mu.Lock()
	m.require = fn
	m.mu.Unlock()
}

// SetPuller installs the fallback used when an input is still missing after the
// requirer returned.
func (m *Managed) SetPuller(fn Puller) {
	m.mu.Lock()
	m.pull = fn
	m.mu.Unlock()
}

// SetObject stores a managed value under ref.
func (m *Managed) SetObject(ref domain.OutputRef, value any) error {
	m.setObject(ref, value)
	return nil
}

// Evaluate resolves the node's inputs in key order and runs its kernel.
func (m *Managed) Evaluate(ctx context.Context, name domain.NodeName) error {
	typ, params, wired, err := m.snapshot(name)
	if err != nil {
		return err
	}
	if err := connected(name, typ, wired); err != nil {
		return err
	}

	m.mu.RLock()
	require, pull := m.require, m.pull
	m.mu.RUnlock()

	inputs := make(map[string]any, len(wired))
	for _, key := range sortedInputs(wired) {
		ref := wired[key]
		if require != nil {
			if err := require(ctx, ref); err != nil {
				return err
			}
		}
		obj, err := m.GetObject(ref)
		if err != nil && pull != nil && errors.Is(err, domain.ErrObjectNotFound) {
			if err := pull(ctx, ref); err != nil {
				return zerr.With(err, "input", key)
			}
			obj, err = m.GetObject(ref)
		}
		if err != nil {
			return zerr.With(err, "input", key)
		}
		inputs[key] = obj
	}

	outputs, err := typ.Run(inputs, params)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "kernel failed"), "type", typ.Descriptor.Type)
	}
	for socket, value := range outputs {
		m.setObject(domain.OutputRef{Node: name, Socket: socket}, value)
	}
	return nil
}
