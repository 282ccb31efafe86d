// Package lookup assembles per-character property records from the
// classification provider and the four source-table providers, and runs
// wildcard name searches over the assigned codespace.
//
// A Service is the application-scoped context object owning all provider
// handles; constructing a fresh Service per test gives full isolation, and
// the process CLI constructs exactly one.
package lookup

import (
	"github.com/scrypster/unilook/internal/annotations"
	"github.com/scrypster/unilook/internal/diag"
	"github.com/scrypster/unilook/internal/ucd"
	"github.com/scrypster/unilook/pkg/types"
)

// DefaultScanLimit is the exclusive upper bound of the name-search scan.
// It covers every assigned plane while excluding the supplementary
// private-use planes, which can never match a canonical name.
const DefaultScanLimit rune = 0xF0000

// MnemonicProvider serves the mnemonic table.
type MnemonicProvider interface {
	Lookup(r rune) (string, bool, error)
}

// SequenceProvider serves the compose-key input sequence table.
type SequenceProvider interface {
	Lookup(r rune) ([]types.InputSequence, bool, error)
}

// EntityProvider serves the markup entity name table.
type EntityProvider interface {
	Lookup(r rune) ([]string, bool, error)
}

// AliasProvider serves the name-alias table.
type AliasProvider interface {
	Lookup(r rune) ([]types.Alias, bool, error)
}

// Options configures a Service. Classifier and the five sources are
// required; Sink and ScanLimit default to diag.Discard and
// DefaultScanLimit.
type Options struct {
	Classifier  ucd.Classifier
	Mnemonics   MnemonicProvider
	Sequences   SequenceProvider
	Entities    EntityProvider
	Aliases     AliasProvider
	Annotations annotations.Source

	// Sink receives parser warnings raised during Resolve.
	Sink diag.Sink

	// ScanLimit bounds the Search scan (exclusive).
	ScanLimit rune
}

// Service resolves character records and searches names. All state it
// touches is immutable after the providers' single builds, so a Service is
// safe for concurrent use.
type Service struct {
	classifier  ucd.Classifier
	mnemonics   MnemonicProvider
	sequences   SequenceProvider
	entities    EntityProvider
	aliases     AliasProvider
	annotations annotations.Source
	sink        diag.Sink
	scanLimit   rune
}

// New creates a Service from opts.
func New(opts Options) *Service {
	sink := opts.Sink
	if sink == nil {
		sink = diag.Discard
	}
	limit := opts.ScanLimit
	if limit == 0 {
		limit = DefaultScanLimit
	}
	return &Service{
		classifier:  opts.Classifier,
		mnemonics:   opts.Mnemonics,
		sequences:   opts.Sequences,
		entities:    opts.Entities,
		aliases:     opts.Aliases,
		annotations: opts.Annotations,
		sink:        sink,
		scanLimit:   limit,
	}
}
