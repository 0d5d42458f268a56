// Package diag defines the error-identity model shared by all pipeline
// phases.
//
// # Purpose
//
//   - Give every distinct error condition a stable, documentable code.
//     A family of conditions declares a short prefix and a per-variant
//     index; CodeOf derives the public code (e.g. "RI0001") and DocURL
//     the documentation link published for it.
//   - Carry call-site context: Frame records one call in the evaluation
//     chain and TopOfTrace renders a bounded trace for display.
//   - Define CompilationError, the JSON wire record consumed by editors
//     and tooling in machine mode.
//
// # Code stability
//
// Codes are permanent public API: external documentation URLs embed
// them. Indexes within a family are assigned once, append-only, and are
// never reassigned or reused even when a variant is retired. Reusing an
// index is a backward-compatibility bug, not a style issue. The digit
// width of the index is likewise frozen (see CodeDigits).
//
// # Scope
//
// Package diag performs no formatting beyond per-frame trace lines and
// no IO. Rendering lives in internal/diagfmt; termination policy lives
// in the driver and CLI layers.
package diag
