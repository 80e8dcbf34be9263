package ports

import (
	"context"
	"io"
)

// Telemetry records the progress of long-running work, one vertex per unit.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a vertex for the named unit of work.
	Record(ctx context.Context, name string) Vertex

	// Close flushes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the vertex's output.
	Stdout() io.Writer

	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)

	// Cached marks the vertex as satisfied without doing the work.
	Cached()
}
