// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds in-memory audio files and mock sources for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// WAVFile describes an in-memory canonical (44-byte header) WAV file.
type WAVFile struct {
	SampleRate int
	Channels   int
	BitDepth   int
	// FormatTag defaults to 1 (integer PCM).
	FormatTag uint16
	// Samples are interleaved raw integer values of BitDepth width.
	Samples []int
}

// Bytes encodes the file.
func (f WAVFile) Bytes() []byte {
	formatTag := f.FormatTag
	if formatTag == 0 {
		formatTag = 1
	}

	bytesPerSample := f.BitDepth / 8
	byteRate := uint32(f.SampleRate * f.Channels * bytesPerSample)
	blockAlign := uint16(f.Channels * bytesPerSample)
	dataSize := uint32(len(f.Samples) * bytesPerSample)

	buf := new(bytes.Buffer)

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, formatTag)
	binary.Write(buf, binary.LittleEndian, uint16(f.Channels))
	binary.Write(buf, binary.LittleEndian, uint32(f.SampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(f.BitDepth))

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range f.Samples {
		writeLE(buf, s, bytesPerSample)
	}

	return buf.Bytes()
}

// WAV16 is a shorthand for a 16-bit PCM WAV file.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = int(s)
	}

	return WAVFile{
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   16,
		Samples:    ints,
	}.Bytes()
}

// AIFFFile describes an in-memory AIFF file with COMM and SSND chunks.
type AIFFFile struct {
	SampleRate int
	Channels   int
	BitDepth   int
	// Compression, when set, makes an AIFF-C file (e.g. "NONE", "fl32").
	Compression string
	// Samples are interleaved big-endian values of BitDepth width.
	Samples []int
}

// Bytes encodes the file.
func (f AIFFFile) Bytes() []byte {
	bytesPerSample := f.BitDepth / 8
	frames := 0
	if f.Channels > 0 {
		frames = len(f.Samples) / f.Channels
	}
	dataSize := len(f.Samples) * bytesPerSample

	comm := new(bytes.Buffer)
	binary.Write(comm, binary.BigEndian, uint16(f.Channels))
	binary.Write(comm, binary.BigEndian, uint32(frames))
	binary.Write(comm, binary.BigEndian, uint16(f.BitDepth))
	comm.Write(extended80(f.SampleRate))

	form := "AIFF"
	if f.Compression != "" {
		form = "AIFC"
		comm.WriteString(f.Compression)
		// empty Pascal string, padded to an even length
		comm.Write([]byte{0, 0})
	}

	ssnd := new(bytes.Buffer)
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(ssnd, binary.BigEndian, uint32(0)) // block size
	for _, s := range f.Samples {
		writeBE(ssnd, s, bytesPerSample)
	}

	buf := new(bytes.Buffer)
	buf.WriteString("FORM")
	binary.Write(buf, binary.BigEndian, uint32(4+8+comm.Len()+8+ssnd.Len()))
	buf.WriteString(form)

	buf.WriteString("COMM")
	binary.Write(buf, binary.BigEndian, uint32(comm.Len()))
	buf.Write(comm.Bytes())

	buf.WriteString("SSND")
	binary.Write(buf, binary.BigEndian, uint32(8+dataSize))
	buf.Write(ssnd.Bytes())

	return buf.Bytes()
}

// extended80 encodes a positive integer as an IEEE 754 80-bit extended float.
func extended80(v int) []byte {
	out := make([]byte, 10)
	if v <= 0 {
		return out
	}

	n := bits.Len64(uint64(v))
	exponent := uint16(16383 + n - 1)
	mantissa := uint64(v) << (64 - n)

	binary.BigEndian.PutUint16(out[0:2], exponent)
	binary.BigEndian.PutUint64(out[2:10], mantissa)

	return out
}

func writeLE(buf *bytes.Buffer, v int, width int) {
	for i := range width {
		buf.WriteByte(byte(v >> (8 * i)))
	}
}

func writeBE(buf *bytes.Buffer, v int, width int) {
	for i := width - 1; i >= 0; i-- {
		buf.WriteByte(byte(v >> (8 * i)))
	}
}
