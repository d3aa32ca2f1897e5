// Package types defines the data model shared by the rule parser, the
// registry and the transformation pipeline: Instruction, RuleDescriptor,
// the Handler interface, and the StepResult/PipelineResult pair that
// records a pipeline run.
package types
