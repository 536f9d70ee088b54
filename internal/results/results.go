// Package results carries the Success/Failure operation result used by
// application services. Business-rule rejections travel as Failure payloads;
// infrastructure problems travel as ordinary errors alongside the result.
package results

// OperationResult holds either a success payload or a failure payload.
type OperationResult[S any, F any] struct {
	Success *S
	Failure *F
}

// Ok wraps a success payload.
func Ok[S any, F any](payload S) OperationResult[S, F] {
	return OperationResult[S, F]{Success: &payload}
}

// Fail wraps a failure payload.
func Fail[S any, F any](payload F) OperationResult[S, F] {
	return OperationResult[S, F]{Failure: &payload}
}

func (r OperationResult[S, F]) IsSuccess() bool { return r.Success != nil }

func (r OperationResult[S, F]) IsFailure() bool { return r.Failure != nil }
