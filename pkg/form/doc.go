// Package form defines the input boundary consumed by the validator: an
// ordered set of named controls, each exposing its control type, live value,
// required flag and checked state. Static is a mutable in-memory form used by
// the CLI, the prompt session and tests; definitions can be loaded from JSON
// or YAML documents (see Parse and LoadFS) and OpenAPI request bodies (see the
// openapi sub-package).
package form
