package resolver

import "go.trai.ch/nodal/internal/core/domain"

// ResolutionContext owns the tracking state of resolution passes: which outputs were
// already resolved in the current epoch, and which outputs have crossed domains.
//
// Visited marks are stamped with the epoch they were taken in, so InvalidateAll is a
// counter increment instead of a wholesale clear. Bridge marks are not epoch-scoped:
// once an output has crossed in a direction it is re-bridged on every later request
// in that direction.
//
// A ResolutionContext is not safe for concurrent use.
type ResolutionContext struct {
	epoch   uint64
	visited map[domain.OutputRef]uint64
	bridged map[domain.BridgeDirection]map[domain.OutputRef]struct{}
}

// NewContext creates a context at epoch 1 with no marks.
func NewContext() *ResolutionContext {
	return &ResolutionContext{
		epoch:   1,
		visited: make(map[domain.OutputRef]uint64),
		bridged: map[domain.BridgeDirection]map[domain.OutputRef]struct{}{
			domain.ManagedToNative: make(map[domain.OutputRef]struct{}),
			domain.NativeToManaged: make(map[domain.OutputRef]struct{}),
		},
	}
}

// Epoch returns the current epoch.
func (c *ResolutionContext) Epoch() uint64 {
	return c.epoch
}

// InvalidateAll starts a new epoch. Every output resolved before is resolved again
// on its next request.
func (c *ResolutionContext) InvalidateAll() {
	c.epoch++
}

// Visited reports whether ref was resolved in the current epoch.
func (c *ResolutionContext) Visited(ref domain.OutputRef) bool {
	return c.visited[ref] == c.epoch
}

// Bridged reports whether ref has ever been bridged in direction dir.
func (c *ResolutionContext) Bridged(dir domain.BridgeDirection, ref domain.OutputRef) bool {
	_, ok := c.bridged[dir][ref]
	return ok
}

// visit marks ref as resolved in the current epoch. It returns false if the mark
// was already present.
func (c *ResolutionContext) visit(ref domain.OutputRef) bool {
	if c.Visited(ref) {
		return false
	}
	c.visited[ref] = c.epoch
	return true
}

func (c *ResolutionContext) markBridged(dir domain.BridgeDirection, ref domain.OutputRef) {
	c.bridged[dir][ref] = struct{}{}
}
