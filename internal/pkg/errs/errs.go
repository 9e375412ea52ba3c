// Package errs is a thin seam over cockroachdb/errors so the rest of
// the codebase does not import it directly.
package errs

import cr "github.com/cockroachdb/errors"

// Wrap annotates err with msg, preserving the original cause for
// errors.Is checks. A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as a reference error so errors.Is(err, markErr)
// holds without hiding the underlying cause.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
