// Package diag defines the diagnostic model shared by the lexer, parser, and
// sema passes.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced
//     during analysis.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag performs no formatting or CLI integration; rendering lives in
// internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error).
//   - Code – compact numeric identifier with a stable string form.
//   - Message – human oriented text.
//   - Primary – the source.Position the diagnostic is anchored to.
//   - Notes – optional secondary positions/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "declared here") rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. Construct a
// ReportBuilder via NewReportBuilder (or ReportError/ReportWarning/ReportInfo)
// and chain WithNote before calling Emit. Analysis never throws on a user
// error — it reports and continues; only an internal invariant violation
// panics.
//
// diag.BagReporter aggregates diagnostics into a Bag, which supports sorting
// and deduplication for deterministic output.
package diag
