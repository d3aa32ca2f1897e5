// Package pipeline executes an instruction chain against input text.
//
// Steps run strictly in order, each one receiving the previous step's
// output. The first failure ends the run: the result keeps the text produced
// by the last successful step and a trace entry for every step that was
// attempted, the failed one last. Nothing after a failure runs.
//
// A Pipeline only reads its registry, so independent runs may share one
// Pipeline and execute concurrently.
package pipeline
