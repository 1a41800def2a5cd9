// Package telemetry provides progress-recording implementations of the
// telemetry port.
package telemetry

import (
	"context"

	"go.trai.ch/cram/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry, used for quiet runs and
// tests.
type NoOp struct{}

// NewNoOp creates a NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns the context unchanged and a vertex that does nothing.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error {
	return nil
}

type noOpVertex struct{}

func (noOpVertex) Done(error) {}
