// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"sync"
)

// ProbeHeaderSize is the number of leading bytes handed to Format.Sniff.
const ProbeHeaderSize = 512

// Registry for container formats, kept in registration order (e.g., "wav", "flac", "ogg").
type Registry struct {
	formats []Format
	byName  map[string]Format

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Format),
		mtx:    &sync.RWMutex{},
	}
}

// Register adds f. Registering a name twice replaces the earlier format in place.
func (r *Registry) Register(f Format) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	name := f.Name()
	if _, ok := r.byName[name]; ok {
		for i := range r.formats {
			if r.formats[i].Name() == name {
				r.formats[i] = f
			}
		}
	} else {
		r.formats = append(r.formats, f)
	}

	r.byName[name] = f
}

func (r *Registry) Get(name string) (Format, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	f, ok := r.byName[name]
	return f, ok
}

// Names lists registered formats in probe order.
func (r *Registry) Names() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]string, 0, len(r.formats))
	for _, f := range r.formats {
		names = append(names, f.Name())
	}

	return names
}

// Probe identifies the container in rs by content sniffing and opens it.
// hint is tried first when it names a registered format; a hint that
// matches nothing (e.g. "audio") just falls through to sniffing.
//
// A leading ID3v2 tag is skipped when the bytes after it belong to a
// registered format, which then sees the stream as starting past the tag.
// Otherwise the tagged header is sniffed as is.
func (r *Registry) Probe(hint string, rs io.ReadSeeker) (Container, error) {
	header, err := peek(rs, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	var (
		format Format
		start  int64
	)

	if tag := ID3v2Size(header); tag > 0 {
		body, err := peek(rs, int64(tag))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}

		if f := r.sniff(hint, body); f != nil {
			format, start = f, int64(tag)
		}
	}

	if format == nil {
		format = r.sniff(hint, header)
	}
	if format == nil {
		return nil, ErrUnsupportedFormat
	}

	src := rs
	if start > 0 {
		if src, err = newOffsetReadSeeker(rs, start); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
		}
	}

	c, err := format.Open(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, format.Name(), err)
	}

	return c, nil
}

// peek reads up to ProbeHeaderSize bytes at offset and rewinds rs.
func peek(rs io.ReadSeeker, offset int64) ([]byte, error) {
	if _, err := rs.Seek(offset, io.SeekStart); err != nil {
		return nil, err
	}

	header := make([]byte, ProbeHeaderSize)
	n, err := io.ReadFull(rs, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return header[:n], nil
}

func (r *Registry) sniff(hint string, header []byte) Format {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if f, ok := r.byName[hint]; ok && f.Sniff(header) {
		return f
	}

	for _, f := range r.formats {
		if f.Sniff(header) {
			return f
		}
	}

	return nil
}
