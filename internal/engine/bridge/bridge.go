// Package bridge copies node outputs between the managed and native node systems.
package bridge

import (
	"context"
	"errors"

	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ObjectBridge = (*Bridge)(nil)

// Bridge reads an object from one system, converts it and stores it under the same
// reference in the other. It carries no state of its own; deciding when to bridge is
// the resolver's job.
type Bridge struct {
	managed   ports.ManagedDomain
	native    ports.NativeDomain
	converter ports.Converter
	tracer    ports.Tracer
}

// New creates a Bridge.
func New(managed ports.ManagedDomain, native ports.NativeDomain, converter ports.Converter, tracer ports.Tracer) *Bridge {
	return &Bridge{
		managed:   managed,
		native:    native,
		converter: converter,
		tracer:    tracer,
	}
}

// PullFromNative copies the native object at ref into the managed system.
func (b *Bridge) PullFromNative(ctx context.Context, ref domain.OutputRef) error {
	_, span := b.tracer.Start(ctx, "bridge.pull_from_native", ports.WithAttribute("ref", ref.String()))
	defer span.End()

	if err := b.copy(ref, domain.NativeToManaged); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// PushToNative copies the managed object at ref into the native system.
func (b *Bridge) PushToNative(ctx context.Context, ref domain.OutputRef) error {
	_, span := b.tracer.Start(ctx, "bridge.push_to_native", ports.WithAttribute("ref", ref.String()))
	defer span.End()

	if err := b.copy(ref, domain.ManagedToNative); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (b *Bridge) copy(ref domain.OutputRef, dir domain.BridgeDirection) error {
	var (
		from    ports.NodeSystem = b.native
		to      ports.NodeSystem = b.managed
		convert                  = b.converter.ToManaged
	)
	if dir == domain.ManagedToNative {
		from, to, convert = b.managed, b.native, b.converter.ToNative
	}

	obj, err := from.GetObject(ref)
	if err != nil {
		return failure(err, ref, dir, "failed to read object")
	}

	converted, err := convert(ref, obj)
	if err != nil {
		return failure(err, ref, dir, "failed to convert object")
	}

	if err := to.SetObject(ref, converted); err != nil {
		return failure(err, ref, dir, "failed to store object")
	}
	return nil
}

func failure(cause error, ref domain.OutputRef, dir domain.BridgeDirection, msg string) error {
	return errors.Join(domain.ErrBridgeFailure,
		zerr.With(zerr.With(zerr.Wrap(cause, msg), "ref", ref.String()), "direction", dir.String()))
}
