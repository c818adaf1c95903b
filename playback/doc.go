// Package playback provides Cursor, a position within a dijkstra.StepLog that
// can be scrubbed by hand or advanced by a timer.
//
// State machine:
//
//	Empty ──Load──▶ Ready ──JumpTo/Step*──▶ Paused ◀──Pause── Playing
//	  ▲                │                        │                ▲
//	  └──────Reset─────┴────────Play────────────┴────────────────┘
//
//   - Empty:   no log loaded; JumpTo and Step* are no-ops, Play fails.
//   - Ready:   log loaded, index 0, nothing applied yet.
//   - Paused:  index anywhere in [0, Len].
//   - Playing: a ticker advances the index by one per tick and pauses
//     automatically on reaching Len.
//
// The index counts applied records: index k means records [0, k) have been
// applied. JumpTo never fails; requests outside [0, Len] are clamped.
//
// Concurrency:
//
//   - Every index transition (tick, JumpTo, Load, Reset) is serialised by one
//     mutex.
//   - Each Play run owns a generation number and a stop channel. Load, Reset
//     and Pause stop the ticker and bump the generation while holding the
//     lock, so a tick already in flight for an older generation is dropped.
//   - At most one ticker runs per cursor; Play while Playing is a no-op.
//   - Pause and Reset are idempotent.
//   - The OnChange hook runs after the mutation, outside the state lock, and
//     notifications are delivered one at a time in transition order: a tick
//     that was in flight when Load ran is announced before the Load, never
//     after it. For ticks the hook runs on the ticker goroutine.
//   - OnChange must not call back into the Cursor; hand the Position to
//     another goroutine instead (a buffered channel, as the TUI does).
//
// Staleness:
//
//   - A cursor never replays a log against a different snapshot. EnsureFresh
//     compares the loaded log with the current snapshot and resets the cursor
//     when they disagree, returning dijkstra.ErrStaleLog.
//
// Options:
//
//   - WithOnChange(fn):    observe every Position change.
//   - WithTicker(factory): substitute the clock (tests).
//   - WithMinInterval(d):  lower bound for Play intervals (default 30ms).
//   - WithLogger(l):       Debug records for state transitions (default discards).
package playback
