package facade

import "github.com/lindqvist-dev/svalid/diag"

// Result is the façade's flat, serialization-friendly view of a
// diag.Result: a validity flag plus formatted error and
// warning strings and their counts, with no exposed Issue/Path structure.
type Result struct {
	Valid        bool
	Errors       []string
	Warnings     []string
	ErrorCount   int
	WarningCount int
}

// newResult flattens a diag.Result into the façade's wire shape, formatting
// every issue with diag.Format.
func newResult(r diag.Result) Result {
	errs := r.Errors()
	warns := r.Warnings()

	out := Result{
		Valid:        r.Valid(),
		ErrorCount:   r.ErrorCount(),
		WarningCount: r.WarningCount(),
	}
	if len(errs) > 0 {
		out.Errors = make([]string, len(errs))
		for i, issue := range errs {
			out.Errors[i] = diag.Format(issue)
		}
	}
	if len(warns) > 0 {
		out.Warnings = make([]string, len(warns))
		for i, issue := range warns {
			out.Warnings[i] = diag.Format(issue)
		}
	}
	return out
}

// Free releases a Result's duplicated strings. It is a no-op in Go — the
// garbage collector owns the memory backing Errors and Warnings — and
// exists so a caller porting the façade's result_free(r) ABI operation has
// a symmetrical call to make.
func (r Result) Free() {}
