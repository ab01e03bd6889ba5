package inmem

import (
	"context"
	"fmt"

	"go.trai.ch/nodal/internal/adapters/codec"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.NativeDomain = (*Native)(nil)

// Native is the native node system. Objects are held in their encoded form and
// decoded only for the duration of a kernel call.
//
// It never resolves its own inputs: the resolver reads Requirements and makes every
// input present before calling Evaluate.
type Native struct {
	*table
}

// NewNative creates a native system with the builtin math kernels and any extra types.
func NewNative(extra ...Type) *Native {
	return &Native{table: newTable(domain.DomainNative, append(nativeTypes(), extra...))}
}

// SetObject stores an encoded object under ref.
func (n *Native) SetObject(ref domain.OutputRef, value any) error {
	data, ok := value.([]byte)
	if !ok {
		return zerr.With(zerr.With(zerr.New("native objects must be encoded"),
			"ref", ref.String()), "type", fmt.Sprintf("%T", value))
	}
	n.setObject(ref, data)
	return nil
}

// Requirements returns the node's wired inputs ordered by input key.
func (n *Native) Requirements(name domain.NodeName) ([]domain.OutputRef, error) {
	_, _, wired, err := n.snapshot(name)
	if err != nil {
		return nil, err
	}
	refs := make([]domain.OutputRef, 0, len(wired))
	for _, key := range sortedInputs(wired) {
		refs = append(refs, wired[key])
	}
	return refs, nil
}

// Evaluate decodes the node's inputs, runs its kernel and stores the encoded outputs.
func (n *Native) Evaluate(_ context.Context, name domain.NodeName) error {
	typ, params, wired, err := n.snapshot(name)
	if err != nil {
		return err
	}
	if err := connected(name, typ, wired); err != nil {
		return err
	}

	inputs := make(map[string]any, len(wired))
	for key, ref := range wired {
		obj, err := n.GetObject(ref)
		if err != nil {
			return zerr.With(err, "input", key)
		}
		value, err := codec.Decode(obj.([]byte))
		if err != nil {
			return zerr.With(zerr.With(err, "ref", ref.String()), "input", key)
		}
		inputs[key] = value
	}

	outputs, err := typ.Run(inputs, params)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "kernel failed"), "type", typ.Descriptor.Type)
	}
	for socket, value := range outputs {
		data, err := codec.Encode(value)
		if err != nil {
			return zerr.With(err, "socket", socket)
		}
		n.setObject(domain.OutputRef{Node: name, Socket: socket}, data)
	}
	return nil
}
