package types

// StepResult records the outcome of one attempted instruction.
// Output holds the text after the step, or the unchanged input if it failed.
type StepResult struct {
	Code      string
	Output    string
	Succeeded bool
	Err       error
}

// PipelineResult is the outcome of running an instruction chain.
// Output is the text after the last successful step.
type PipelineResult struct {
	Output string
	Trace  []StepResult
}

// Succeeded reports whether every attempted step succeeded
func (r *PipelineResult) Succeeded() bool {
	return r.Failed() == nil
}

// Failed returns the failed step, if any. Only the last step can fail.
func (r *PipelineResult) Failed() *StepResult {
	if len(r.Trace) == 0 {
		return nil
	}
	last := &r.Trace[len(r.Trace)-1]
	if last.Succeeded {
		return nil
	}
	return last
}

// Err returns the error of the failed step, or nil
func (r *PipelineResult) Err() error {
	if f := r.Failed(); f != nil {
		return f.Err
	}
	return nil
}

// Outcomes returns the succeeded flag of each step in order
func (r *PipelineResult) Outcomes() []bool {
	out := make([]bool, len(r.Trace))
	for i, s := range r.Trace {
		out[i] = s.Succeeded
	}
	return out
}
