// Package registry holds the table of rules a pipeline can execute.
//
// A Registry is filled during bootstrap, from the built-in rules and the
// capability providers, and then frozen. A frozen registry rejects further
// registration and can be read from any number of goroutines without
// locking. There is no global instance: the application builds one and
// passes it to the pipeline.
//
// Codes whose provider failed to initialize are kept as "unavailable" so a
// lookup can tell a missing capability apart from a typo.
package registry
