// Package errors provides error handling for plugingen.
//
// It re-exports the subset of github.com/cockroachdb/errors the generator
// uses, so call sites get stack traces and wrapping without importing the
// upstream package directly, plus the sentinel errors shared across the
// generation pipeline.
//
// Usage:
//
//	artifact, err := sink.Create(name, owner)
//	if err != nil {
//	    return errors.Wrapf(err, "create artifact for %s", name)
//	}
//
//	if errors.Is(err, errors.ErrArtifactUnavailable) {
//	    // isolated per-owner failure, siblings still generate
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Assertions for programming-contract violations (malformed descriptors and
// the like, which upstream collaborators are required never to produce).
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the generation pipeline. Check with errors.Is; wrap
// with errors.Wrap to add context while preserving the type.
var (
	// ErrArtifactUnavailable indicates the output artifact for a generated
	// module could not be acquired. This aborts generation for the affected
	// owner only.
	ErrArtifactUnavailable = New("output artifact unavailable")

	// ErrBadDirective indicates a plugingen directive that could not be
	// parsed or was attached to an unsupported declaration.
	ErrBadDirective = New("malformed plugingen directive")
)
