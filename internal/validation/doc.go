// Package validation implements the field validation engine for post
// input. Profiles are explicit, ordered rule tables rather than
// reflection-driven tag checks: each rule names a field, a predicate,
// and the message recorded when the predicate fails. Evaluation order
// and the resulting error output are therefore fully deterministic.
package validation
