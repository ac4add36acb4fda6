// Package backend provides an interface for execution backends.
package backend

import (
	"github.com/funvibe/matx/internal/evaluator"
	"github.com/funvibe/matx/internal/pipeline"
)

// Backend is the interface for execution backends
type Backend interface {
	// Run executes the program from pipeline context and returns the result
	Run(ctx *pipeline.PipelineContext) (evaluator.Object, error)

	// Name returns the backend name for display
	Name() string
}
