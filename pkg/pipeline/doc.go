// Package pipeline provides a sequential runner for named lists of steps.
//
// A pipeline is an ordered list of steps. Every step receives the result of the previous one,
// followed by the dependencies injected in the pipeline, and produces the result consumed by the
// next step. A step is either a plain function, a named plugin, any value able to run itself, or
// another pipeline. A nested pipeline inherits the dependencies of the pipeline it is registered
// in: the parent dependencies come first, then its own.
//
// A step hands its output to the next step through a Result: Empty passes only the dependencies,
// Single passes one value and Multiple passes several values as separate arguments.
//
// The pipeline fails fast. Any invalid construction, invalid registration or failing step goes
// through a single exit handler which, by default, prints the error and terminates the process
// with status 1. Tests replace the handler to observe failures without exiting.
package pipeline
