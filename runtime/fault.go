// Package runtime defines the single panic value used across the
// pipeline for assertion-level failures: conditions the pipeline
// considers a fatal bug rather than a recoverable parse-time
// condition (unbound JS function call, pop-until on a missing stack
// element, tokenizer misuse). See the error handling notes in
// DESIGN.md for the non-fatal/fatal/boundary split this belongs to.
package runtime

import "fmt"

// Fault is the panic value raised for fatal, assertion-level
// conditions. Op names the operation that failed; Detail describes
// the specific violated precondition.
type Fault struct {
	Op     string
	Detail string
}

func (f Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Op, f.Detail)
}

// Raise panics with a Fault built from op and detail.
func Raise(op, detail string) {
	panic(Fault{Op: op, Detail: detail})
}
