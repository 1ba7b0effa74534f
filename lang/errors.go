package lang

import "github.com/goodcodedev/langbase/errs"

// Re-exported so callers of lang never need to import errs directly to
// recognize a fatal build error's kind.
var (
	ErrUnresolvedReference = errs.ErrUnresolvedReference
	ErrListShape           = errs.ErrListShape
	ErrListCycle           = errs.ErrListCycle
	ErrTypeConflict        = errs.ErrTypeConflict
	ErrReparentConflict    = errs.ErrReparentConflict
	ErrUnsupportedAction   = errs.ErrUnsupportedAction
	ErrMultipleCases       = errs.ErrMultipleCases
)

func newSpecError(cause error, detail string, row, col int) *errs.SpecError {
	return &errs.SpecError{Cause: cause, Detail: detail, Row: row, Col: col}
}
