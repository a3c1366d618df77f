// Package rsonpath compiles JSONPath queries into a minimized deterministic
// automaton and executes them against JSON documents in a single pass,
// without buffering the whole document unless the chosen Input
// implementation does so itself.
//
// A query is compiled once with Compile and the resulting *Automaton can be
// reused concurrently across any number of Run calls over different inputs.
package rsonpath
