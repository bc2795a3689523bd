// Package gm8reader wires the PE Inspector, UPX Unpacker, Protection
// Detector & Decryptor, and Payload Reader into the single sequential
// pipeline described by SPEC_FULL.md §2 System Overview.
package gm8reader

import "github.com/xelivous-go/gm8reader/pkg/payload"

// Options controls the reader's strictness and concurrency. Strict rejects
// any section version tag mismatch instead of logging and continuing;
// Multithread enables the §4.7 fork-join worker pool for asset decoding.
type Options struct {
	Strict      bool
	Multithread bool
}

func (o Options) toPayloadOptions() payload.Options {
	return payload.Options{Strict: o.Strict, Multithread: o.Multithread}
}
