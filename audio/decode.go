// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"io"
)

// DecodeFirstTrack opens r as format f and returns a decoder for the first
// decodable track. Readers that cannot seek are buffered in memory.
func DecodeFirstTrack(f Format, r io.Reader) (Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading %s data: %w", f.Name(), err)
		}
		rs = bytes.NewReader(data)
	}

	c, err := f.Open(rs)
	if err != nil {
		return nil, err
	}

	track, err := FirstDecodableTrack(c.Tracks())
	if err != nil {
		c.Close()
		return nil, err
	}

	src, err := c.NewDecoder(track)
	if err != nil {
		c.Close()
		return nil, err
	}

	return src, nil
}
