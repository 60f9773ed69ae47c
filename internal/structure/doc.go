// Package structure holds the observed geological structures and the
// behaviors that turn them into a misfit against a remote stress.
//
// A structure type (joint, dike, stylolite, ...) is a Behavior: a cost
// function and a predict function keyed on one principal direction.
// Types are resolved by name through a Registry; the Default registry is
// populated with the built-in types at startup and can be extended with
// Register without touching the solvers.
//
// Data sources are plain text, one "x y" direction per line, one type per
// source. Directions are normalized on ingest.
package structure
