// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
)

// FLACBlockSize is the number of frames per encoded FLAC block.
const FLACBlockSize = 1024

// FLACFile describes an in-memory FLAC stream with fixed-size blocks.
type FLACFile struct {
	SampleRate int
	Channels   int
	BitDepth   int
	// Samples are interleaved signed integer values of BitDepth width.
	Samples []int
}

// Bytes encodes the file with github.com/mewkiz/flac.
func (f FLACFile) Bytes() ([]byte, error) {
	frames := len(f.Samples) / f.Channels

	info := &meta.StreamInfo{
		BlockSizeMin:  FLACBlockSize,
		BlockSizeMax:  FLACBlockSize,
		SampleRate:    uint32(f.SampleRate),
		NChannels:     uint8(f.Channels),
		BitsPerSample: uint8(f.BitDepth),
		NSamples:      uint64(frames),
	}

	buf := new(bytes.Buffer)
	enc, err := flac.NewEncoder(buf, info)
	if err != nil {
		return nil, err
	}
	// Verbatim subframes keep the encoded samples bit-exact.
	enc.EnablePredictionAnalysis(false)

	channels := frame.ChannelsMono
	if f.Channels == 2 {
		channels = frame.ChannelsLR
	}

	for start := 0; start < frames; start += FLACBlockSize {
		n := min(FLACBlockSize, frames-start)

		subframes := make([]*frame.Subframe, f.Channels)
		for ch := range subframes {
			samples := make([]int32, n)
			for i := range samples {
				samples[i] = int32(f.Samples[(start+i)*f.Channels+ch])
			}

			subframes[ch] = &frame.Subframe{
				SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
				Samples:   samples,
				NSamples:  n,
			}
		}

		fr := &frame.Frame{
			Header: frame.Header{
				HasFixedBlockSize: true,
				BlockSize:         uint16(n),
				SampleRate:        uint32(f.SampleRate),
				Channels:          channels,
				BitsPerSample:     uint8(f.BitDepth),
			},
			Subframes: subframes,
		}

		if err := enc.WriteFrame(fr); err != nil {
			return nil, err
		}
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WithID3v2 prefixes data with an empty ID3v2.4 tag padded to size bytes.
func WithID3v2(data []byte, size int) []byte {
	tag := []byte{'I', 'D', '3', 4, 0, 0,
		byte(size >> 21 & 0x7F), byte(size >> 14 & 0x7F), byte(size >> 7 & 0x7F), byte(size & 0x7F)}
	tag = append(tag, make([]byte, size)...)

	return append(tag, data...)
}
