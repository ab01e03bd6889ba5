package resolver

import "go.trai.ch/nodal/internal/core/domain"

// MarkBridged exposes markBridged for testing.
func (c *ResolutionContext) MarkBridged(dir domain.BridgeDirection, ref domain.OutputRef) {
	c.markBridged(dir, ref)
}
