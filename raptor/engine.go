package raptor

import "github.com/rs/zerolog"

/**
 * Engine is one query-issuing instance: an immutable GraphView handle
 * plus the mutable SearchState scratch block that must never be shared
 * between concurrent queries. Construct one Engine per goroutine/thread
 * that will call CalcLeastCostRoute/CalcRoutes; engines may share the
 * same GraphView freely (it is read-only).
 */
type Engine struct {
	graph  GraphView
	state  *SearchState
	logger zerolog.Logger
}

// NewEngine builds an Engine over the given graph view, with scratch
// state sized from its counts. The logger defaults to a no-op logger
// (raptorlog.Nop()); call WithLogger to attach a real one.
func NewEngine(graph GraphView) *Engine {
	return &Engine{
		graph:  graph,
		state:  NewSearchState(graph),
		logger: zerolog.Nop(),
	}
}

// WithLogger attaches a logger and returns the engine for chaining.
func (e *Engine) WithLogger(logger zerolog.Logger) *Engine {
	e.logger = logger
	return e
}

// GraphView returns the engine's graph view handle.
func (e *Engine) GraphView() GraphView {
	return e.graph
}
