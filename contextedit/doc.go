// Package contextedit decides how a session's conversation history should be
// shrunk before it is replayed into the model.
//
// The context service stores the full history of every session and can apply
// edit strategies transiently at retrieval time: the caller passes a list of
// strategies with the retrieval call, the service returns a reduced view, and
// stored history is never mutated. This package owns the decision of which
// strategy (if any) to request.
//
// # Decision algorithm
//
// Decide evaluates checks in strict priority order and returns the first
// strategy that is warranted:
//
//  1. No token signal (nil or zero usage): no strategy. Without a token count
//     there is no evidence that anything needs to shrink.
//  2. Total tokens above TokenLimitThreshold: a TokenLimit strategy trimming
//     the session down to TokenLimitTarget. A breached token budget always
//     wins over the tool-volume checks because it risks the model's hard
//     context window.
//  3. Too many tool-result messages: a RemoveToolResults strategy that
//     replaces all but the most recent tool results with a placeholder. Tool
//     outputs are the bulkiest, least reusable content in a session.
//  4. Too many tool-call references: a RemoveToolCallParams strategy that
//     strips arguments from older calls while keeping the call trace intact.
//
// At most one strategy is returned per call. Strategies are deliberately not
// stacked: a single predictable compaction pass avoids double-processing the
// same history in one retrieval.
//
// # Purity
//
// Decide is a pure function of its inputs. It performs no I/O, holds no
// state, never fails, and is safe to call concurrently. All logging and
// diagnostics belong to the caller.
package contextedit
