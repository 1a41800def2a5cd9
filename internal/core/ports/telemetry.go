package ports

import "context"

// Telemetry records the progress of pipeline stages.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a vertex for the named stage. The returned context
	// carries the vertex for nested stages.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Done completes the vertex, recording err when non-nil.
	Done(err error)
}
