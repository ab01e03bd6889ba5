// Package app implements the application layer for nodal.
package app

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	"go.trai.ch/nodal/internal/adapters/inmem"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/nodal/internal/engine/playback"
	"go.trai.ch/nodal/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic: it replays projects into the node
// systems, evaluates targets and drives playback.
type App struct {
	loader   ports.GraphLoader
	resolver *resolver.Resolver
	managed  ports.ManagedDomain
	bridge   ports.ObjectBridge
	player   *playback.Player
	frames   ports.FrameSource
	store    ports.StatusStore
	logger   ports.Logger

	rc *resolver.ResolutionContext
}

// Result is the outcome of evaluating one target. Value is set for output targets.
type Result struct {
	Target string
	Value  any
}

// PlayOptions configures a playback run.
type PlayOptions struct {
	// Ticks is the number of ticks to run; 0 runs until the context is cancelled.
	Ticks int
	// Interval paces ticks; 0 runs them back to back.
	Interval time.Duration
}

type requirerSetter interface {
	SetRequirer(fn inmem.Requirer)
}

type pullerSetter interface {
	SetPuller(fn inmem.Puller)
}

type watcher interface {
	Watch(ctx context.Context) error
}

// New creates a new App instance. If the managed system resolves its inputs through
// a requirer, the App installs one backed by its resolution context, plus a puller
// that bridges native outputs the requirer found already visited.
func New(
	loader ports.GraphLoader,
	res *resolver.Resolver,
	managed ports.ManagedDomain,
	objBridge ports.ObjectBridge,
	player *playback.Player,
	frames ports.FrameSource,
	store ports.StatusStore,
	logger ports.Logger,
) *App {
	a := &App{
		loader:   loader,
		resolver: res,
		managed:  managed,
		bridge:   objBridge,
		player:   player,
		frames:   frames,
		store:    store,
		logger:   logger,
		rc:       resolver.NewContext(),
	}
	if s, ok := managed.(requirerSetter); ok {
		s.SetRequirer(a.requireManaged)
	}
	if s, ok := managed.(pullerSetter); ok {
		s.SetPuller(a.pullNative)
	}
	return a
}

func (a *App) requireManaged(ctx context.Context, ref domain.OutputRef) error {
	return a.resolver.RequireObject(ctx, a.rc, ref, true)
}

// pullNative copies a native output into the managed system. Visited marks are
// shared by both directions, so an output first resolved as a native copy is not
// bridged back by a later managed request in the same epoch.
func (a *App) pullNative(ctx context.Context, ref domain.OutputRef) error {
	d, err := a.resolver.DomainOf(ref.Node)
	if err != nil {
		return err
	}
	if d != domain.DomainNative {
		return nil
	}
	return a.bridge.PullFromNative(ctx, ref)
}

// Load reads the project at path and replays it into the node systems: every node is
// created first, then parameterized and wired, then initialized, each in name order.
// Playback settings are applied to the player and the frame source.
func (a *App) Load(_ context.Context, path string) error {
	project, err := a.loader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load project")
	}

	for _, spec := range project.Nodes {
		if err := a.resolver.AddNode(spec.Type, spec.Name); err != nil {
			return err
		}
	}

	for _, spec := range project.Nodes {
		for _, key := range slices.Sorted(maps.Keys(spec.Params)) {
			if err := a.resolver.SetParam(spec.Name, key, spec.Params[key]); err != nil {
				return err
			}
		}
		for _, key := range slices.Sorted(maps.Keys(spec.Inputs)) {
			if err := a.resolver.SetInput(spec.Name, key, spec.Inputs[key]); err != nil {
				return err
			}
		}
	}

	for _, spec := range project.Nodes {
		if err := a.resolver.InitNode(spec.Name); err != nil {
			return err
		}
	}

	if err := a.frames.SetActivePath(project.FramesPath); err != nil {
		return err
	}
	a.player.ApplyStatus(project.Playback)

	a.logger.Info("project loaded", "path", path, "nodes", len(project.Nodes))
	return nil
}

// Evaluate starts a new epoch and resolves each target in order. A target is either a
// node name, which is applied, or an output reference, whose managed value is
// returned.
func (a *App) Evaluate(ctx context.Context, targets []string) ([]Result, error) {
	if len(targets) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}

	a.rc.InvalidateAll()

	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		if !strings.Contains(target, domain.RefSeparator) {
			name, err := domain.ParseNodeName(target)
			if err != nil {
				return nil, err
			}
			if err := a.resolver.ApplyNode(ctx, a.rc, name); err != nil {
				return nil, err
			}
			results = append(results, Result{Target: target})
			continue
		}

		ref, err := domain.ParseOutputRef(target)
		if err != nil {
			return nil, err
		}
		if err := a.resolver.RequireObject(ctx, a.rc, ref, true); err != nil {
			return nil, err
		}
		value, err := a.managed.GetObject(ref)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{Target: target, Value: value})
	}
	return results, nil
}

// Play initializes the player, restores the saved frame and runs ticks until
// opts.Ticks are done or ctx is cancelled. Cancellation is observed between ticks
// and is not an error. The reached status is saved afterwards.
func (a *App) Play(ctx context.Context, opts PlayOptions) error {
	if err := a.start(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, stop := context.WithCancel(gctx)
	defer stop()

	if w, ok := a.frames.(watcher); ok {
		g.Go(func() error {
			// Without the watcher listings only refresh on a path change.
			if err := w.Watch(loopCtx); err != nil {
				a.logger.Warn("frames watcher stopped", "error", err.Error())
			}
			return nil
		})
	}

	g.Go(func() error {
		defer stop()
		return a.loop(loopCtx, opts)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return a.save()
}

func (a *App) loop(ctx context.Context, opts PlayOptions) error {
	var pace <-chan time.Time
	if opts.Interval > 0 {
		t := time.NewTicker(opts.Interval)
		defer t.Stop()
		pace = t.C
	}

	for i := 0; opts.Ticks == 0 || i < opts.Ticks; i++ {
		if i > 0 && pace != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-pace:
			}
		}
		if ctx.Err() != nil {
			return nil
		}
		if err := a.player.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Record initializes the player, restores the saved frame and renders it into path.
func (a *App) Record(ctx context.Context, path string) error {
	if err := a.start(); err != nil {
		return err
	}
	return a.player.RecordTick(ctx, path)
}

// Descriptors lists the node types of both systems.
func (a *App) Descriptors() []domain.Descriptor {
	return a.resolver.DumpDescriptors()
}

// Status returns the current playback status.
func (a *App) Status() domain.PlaybackStatus {
	return a.player.Status()
}

func (a *App) start() error {
	if err := a.player.Initialize(); err != nil {
		return err
	}

	saved, err := a.store.Load()
	if err != nil {
		a.logger.Warn("ignoring unreadable playback status", "error", err.Error())
		return nil
	}
	if saved != nil {
		a.player.SetCurrentFrame(saved.CurrentFrame)
	}
	return nil
}

func (a *App) save() error {
	if err := a.store.Save(a.player.Status()); err != nil {
		return zerr.Wrap(err, "failed to save playback status")
	}
	return nil
}
