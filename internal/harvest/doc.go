// Package harvest drives one releasewatch invocation: the batch cursor,
// the per-artist fetch loop, and the merge/persist step.
//
// # Batching
//
// The artist list is processed in contiguous fixed-size batches. The only
// persisted cursor is a batch index; NextBatch is a pure function from
// (list, index, size) to a slice, so cursor advancement and wraparound
// stay with the Manager and the cursor itself is trivially testable.
//
// # The Manager
//
// Manager runs up to a configured number of batches per invocation,
// fetching one artist at a time. A per-artist failure is recorded as a
// typed result and logged; it never aborts the run. When the cursor walks
// off the end of the list the cycle is complete: the cursor resets to 0,
// the completion date is stamped, and the remaining batch allowance of
// this invocation is forfeited.
//
//	manager := harvest.NewManager(settings, creds, func(e harvest.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	report, err := manager.Run(ctx)
//
// Only two failures are fatal to Run: state that cannot be loaded or
// saved, and a failed token exchange.
package harvest
