// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/internal/audiotest"
)

func readAll(t *testing.T, src audio.Source) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 4)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestDecoder_Sniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   bool
	}{
		{name: "canonical", header: audiotest.WAV16(8000, 1, []int16{1, 2}), want: true},
		{name: "riff but not wave", header: []byte("RIFF\x00\x00\x00\x00AVI LIST"), want: false},
		{name: "aiff", header: []byte("FORM\x00\x00\x00\x00AIFF"), want: false},
		{name: "too short", header: []byte("RIFF"), want: false},
		{name: "empty", header: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := (Decoder{}).Sniff(tt.header); got != tt.want {
				t.Errorf("Sniff() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 8192, -32768, 0}
	src, err := Decoder{}.Decode(bytes.NewReader(audiotest.WAV16(8000, 1, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}

	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	got := readAll(t, src)
	want := []float32{0, 0.5, -0.5, 0.25, -1, 0}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_StereoWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400, 500, 600}
	src, err := Decoder{}.Decode(bytes.NewReader(audiotest.WAV16(44100, 2, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	if got := readAll(t, src); len(got) != len(samples) {
		t.Errorf("read %d samples, want %d", len(got), len(samples))
	}
}

func TestDecoder_24Bit(t *testing.T) {
	t.Parallel()

	data := audiotest.WAVFile{
		SampleRate: 48000,
		Channels:   1,
		BitDepth:   24,
		Samples:    []int{4194304, -8388608, 0},
	}.Bytes()

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	got := readAll(t, src)
	want := []float32{0.5, -1, 0}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}

	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("NOT A WAV FILE DATA")))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func floatBits(v float32) int { return int(int32(math.Float32bits(v))) }

func TestDecoder_IEEEFloat(t *testing.T) {
	t.Parallel()

	data := audiotest.WAVFile{
		SampleRate: 8000,
		Channels:   2,
		BitDepth:   32,
		FormatTag:  3,
		Samples: []int{
			floatBits(0), floatBits(0.5),
			floatBits(-0.25), floatBits(1),
			floatBits(-1), floatBits(2),
		},
	}.Bytes()

	c, err := Decoder{}.Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}

	track := c.Tracks()[0]
	if track.Codec != audio.CodecPCMFloat || track.BitDepth != 32 || track.Channels != 2 {
		t.Fatalf("track = %+v, want stereo 32-bit float", track)
	}

	src, err := c.NewDecoder(track)
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}

	got := readAll(t, src)
	// out of range values are clipped
	want := []float32{0, 0.5, -0.25, 1, -1, 1}
	if len(got) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_UnknownFormatTagHasNoDecodableTrack(t *testing.T) {
	t.Parallel()

	// 0x0006 is A-law
	data := audiotest.WAVFile{
		SampleRate: 8000,
		Channels:   1,
		BitDepth:   8,
		FormatTag:  6,
		Samples:    []int{0, 1, 2, 3},
	}.Bytes()

	c, err := Decoder{}.Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}

	tracks := c.Tracks()
	if len(tracks) != 1 || tracks[0].Codec != audio.CodecNull {
		t.Errorf("Tracks() = %+v, want one track with null codec", tracks)
	}

	_, err = Decoder{}.Decode(bytes.NewReader(data))
	if !errors.Is(err, audio.ErrNoDecodableTrack) {
		t.Errorf("Decode() error = %v, want ErrNoDecodableTrack", err)
	}
}

func TestContainer_NewDecoderRejectsDoubleFloat(t *testing.T) {
	t.Parallel()

	data := audiotest.WAVFile{SampleRate: 8000, Channels: 1, BitDepth: 32, FormatTag: 3, Samples: []int{0}}.Bytes()

	c, err := Decoder{}.Open(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}

	track := c.Tracks()[0]
	track.BitDepth = 64
	if _, err := c.NewDecoder(track); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("NewDecoder(64-bit float) error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestContainer_NewDecoderValidatesTrack(t *testing.T) {
	t.Parallel()

	c, err := Decoder{}.Open(bytes.NewReader(audiotest.WAV16(8000, 1, []int16{1, 2, 3})))
	if err != nil {
		t.Fatalf("Open() error = %v, want nil", err)
	}

	track := c.Tracks()[0]

	odd := track
	odd.BitDepth = 20
	if _, err := c.NewDecoder(odd); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("NewDecoder(20-bit) error = %v, want ErrUnsupportedBitDepth", err)
	}

	silent := track
	silent.SampleRate = 0
	if _, err := c.NewDecoder(silent); !errors.Is(err, ErrInvalidWavLayout) {
		t.Errorf("NewDecoder(0 Hz) error = %v, want ErrInvalidWavLayout", err)
	}

	other := track
	other.ID = 7
	if _, err := c.NewDecoder(other); !errors.Is(err, ErrNoSuchTrack) {
		t.Errorf("NewDecoder(id 7) error = %v, want ErrNoSuchTrack", err)
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	data := audiotest.WAV16(16000, 1, []int16{1, 2, 3, 4})
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if got := readAll(t, src); len(got) != 4 {
		t.Errorf("read %d samples, want 4", len(got))
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	samples := make([]int16, 44100)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	data := audiotest.WAV16(44100, 1, samples)
	buf := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		for {
			_, err := src.ReadSamples(buf)
			if err != nil {
				break
			}
		}
	}
}
