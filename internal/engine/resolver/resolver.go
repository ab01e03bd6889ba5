// Package resolver implements dependency resolution across the managed and native
// node systems: it decides what must be evaluated, in what order, and which outputs
// must be copied across domains before a consumer runs.
package resolver

import (
	"context"
	"errors"

	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver dispatches node operations to the owning node system and resolves
// cross-domain dependencies depth-first. Tracking state lives in the
// ResolutionContext passed to each resolution call.
type Resolver struct {
	managed ports.ManagedDomain
	native  ports.NativeDomain
	bridge  ports.ObjectBridge
	logger  ports.Logger
	tracer  ports.Tracer
	metrics ports.Metrics
	nodes   *domain.Registry
}

// New creates a Resolver over the two node systems.
func New(
	managed ports.ManagedDomain,
	native ports.NativeDomain,
	bridge ports.ObjectBridge,
	logger ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Resolver {
	return &Resolver{
		managed: managed,
		native:  native,
		bridge:  bridge,
		logger:  logger,
		tracer:  tracer,
		metrics: metrics,
		nodes:   domain.NewRegistry(),
	}
}

// RequireObject ensures the output ref is computed and, if the caller needs it in
// the other domain, materialized there. With wantManagedCopy the caller needs a
// managed copy; otherwise a native one.
//
// The output is marked visited before anything else, which bounds recursion on
// cyclic requirements: re-entry for the same output within an epoch returns nil.
func (r *Resolver) RequireObject(
	ctx context.Context,
	rc *ResolutionContext,
	ref domain.OutputRef,
	wantManagedCopy bool,
) error {
	if !rc.visit(ref) {
		return nil
	}

	ctx, span := r.tracer.Start(ctx, "resolver.require_object",
		ports.WithAttribute("ref", ref.String()),
		ports.WithAttribute("want_managed", wantManagedCopy),
		ports.WithAttribute("epoch", int64(rc.Epoch())),
	)
	defer span.End()

	if err := r.ApplyNode(ctx, rc, ref.Node); err != nil {
		span.RecordError(err)
		return err
	}

	producer, err := r.domainOf(ref.Node)
	if err != nil {
		span.RecordError(err)
		return err
	}
	producerManaged := producer == domain.DomainManaged

	if wantManagedCopy {
		if rc.Bridged(domain.NativeToManaged, ref) || !producerManaged {
			err = r.bridgeObject(ctx, rc, domain.NativeToManaged, ref)
		}
	} else {
		if rc.Bridged(domain.ManagedToNative, ref) || producerManaged {
			err = r.bridgeObject(ctx, rc, domain.ManagedToNative, ref)
		}
	}
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (r *Resolver) bridgeObject(
	ctx context.Context,
	rc *ResolutionContext,
	dir domain.BridgeDirection,
	ref domain.OutputRef,
) error {
	rc.markBridged(dir, ref)
	r.logger.Debug("bridging object", "ref", ref.String(), "direction", dir.String())

	var err error
	if dir == domain.NativeToManaged {
		err = r.bridge.PullFromNative(ctx, ref)
	} else {
		err = r.bridge.PushToNative(ctx, ref)
	}
	if err != nil {
		return err
	}
	r.metrics.ObjectBridged(dir)
	return nil
}

// ApplyNode evaluates a node in its own domain. Managed nodes are handed to the
// managed system as is. Native nodes first have every declared requirement
// resolved as a native copy, in declaration order.
func (r *Resolver) ApplyNode(ctx context.Context, rc *ResolutionContext, name domain.NodeName) error {
	d, err := r.domainOf(name)
	if err != nil {
		return err
	}

	ctx, span := r.tracer.Start(ctx, "resolver.apply_node",
		ports.WithAttribute("node", name.String()),
		ports.WithAttribute("domain", d.String()),
	)
	defer span.End()

	if d == domain.DomainNative {
		deps, err := r.native.Requirements(name)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to read node requirements"), "node", name.String())
			span.RecordError(err)
			return err
		}
		for _, dep := range deps {
			if err := r.RequireObject(ctx, rc, dep, false); err != nil {
				span.RecordError(err)
				return err
			}
		}
	}

	if err := r.system(d).Evaluate(ctx, name); err != nil {
		err = errors.Join(domain.ErrEvaluationFailed,
			zerr.With(zerr.With(err, "node", name.String()), "domain", d.String()))
		span.RecordError(err)
		return err
	}
	r.metrics.NodeEvaluated(d)
	return nil
}
