package app

import (
	"errors"

	"github.com/hyperifyio/docxtext/internal/docx"
)

// Outcome tags what happened to one input document.
type Outcome string

const (
	OutcomeWritten      Outcome = "written"
	OutcomeWouldWrite   Outcome = "would-write" // dry run
	OutcomeEntryMissing Outcome = "entry-missing"
	OutcomeArchiveOpen  Outcome = "archive-open"
	OutcomeEntryRead    Outcome = "entry-read"
	OutcomeDecode       Outcome = "decode"
	OutcomeWrite        Outcome = "write"
)

// Failed reports whether the outcome is a per-file error. A missing entry is
// a skip, not a failure.
func (o Outcome) Failed() bool {
	switch o {
	case OutcomeArchiveOpen, OutcomeEntryRead, OutcomeDecode, OutcomeWrite:
		return true
	}
	return false
}

// FileResult is the tagged result for one matched input.
type FileResult struct {
	Input   string
	Output  string
	Outcome Outcome
	Err     error
	// Text is the extracted text; empty unless the entry was read.
	Text string
}

// outcomeFor classifies an error from the read stage.
func outcomeFor(err error) Outcome {
	switch {
	case errors.Is(err, docx.ErrEntryMissing):
		return OutcomeEntryMissing
	case errors.Is(err, docx.ErrReadEntry):
		return OutcomeEntryRead
	case errors.Is(err, docx.ErrDecode):
		return OutcomeDecode
	default:
		return OutcomeArchiveOpen
	}
}
