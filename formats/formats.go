// SPDX-License-Identifier: EPL-2.0

// Package formats assembles the container formats this module can decode.
package formats

import (
	"sync"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/formats/aiff"
	"github.com/ik5/audwave/formats/flac"
	"github.com/ik5/audwave/formats/mp3"
	"github.com/ik5/audwave/formats/vorbis"
	"github.com/ik5/audwave/formats/wav"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *audio.Registry
)

// NewRegistry returns a registry holding every bundled format in probe order:
// wav, aiff, flac, ogg, mp3. MPEG audio goes last because its frame sync
// check is the weakest signature.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register(wav.Decoder{})
	reg.Register(aiff.Decoder{})
	reg.Register(flac.Decoder{})
	reg.Register(vorbis.Decoder{})
	reg.Register(mp3.Decoder{})

	return reg
}

// Default returns the process-wide registry, built on first use.
func Default() *audio.Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}
