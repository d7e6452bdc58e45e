// SPDX-License-Identifier: EPL-2.0

package formats_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/formats"
	"github.com/ik5/audwave/internal/audiotest"
)

func TestDefault_Order(t *testing.T) {
	t.Parallel()

	want := []string{"wav", "aiff", "flac", "ogg", "mp3"}
	got := formats.Default().Names()

	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefault_IsShared(t *testing.T) {
	t.Parallel()

	if formats.Default() != formats.Default() {
		t.Error("Default() returned different registries")
	}
}

func TestProbe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       []byte
		wantFormat string
		wantErr    error
	}{
		{
			name:       "wav",
			data:       audiotest.WAV16(8000, 1, []int16{1, 2, 3, 4}),
			wantFormat: "wav",
		},
		{
			name:       "aiff",
			data:       audiotest.AIFFFile{SampleRate: 8000, Channels: 1, BitDepth: 16, Samples: []int{1, 2}}.Bytes(),
			wantFormat: "aiff",
		},
		{
			name:       "mp3 frame",
			data:       []byte{0xFF, 0xFB, 0x90, 0x44, 0, 0, 0, 0},
			wantFormat: "mp3",
		},
		{
			name:    "matroska",
			data:    []byte{0x1A, 0x45, 0xDF, 0xA3, 0, 0, 0, 0},
			wantErr: audio.ErrUnsupportedFormat,
		},
		{
			name:    "empty",
			data:    nil,
			wantErr: audio.ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := formats.Default().Probe("audio", bytes.NewReader(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Probe() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Probe() error = %v", err)
			}
			defer c.Close()

			if c.Format() != tt.wantFormat {
				t.Errorf("Format() = %q, want %q", c.Format(), tt.wantFormat)
			}
		})
	}
}

func TestProbe_ID3TaggedFLAC(t *testing.T) {
	t.Parallel()

	samples := make([]int, 2*3000)
	for i := range samples {
		samples[i] = (i%200 - 100) * 100
	}

	flacData, err := audiotest.FLACFile{SampleRate: 8000, Channels: 2, BitDepth: 16, Samples: samples}.Bytes()
	if err != nil {
		t.Fatalf("encoding FLAC: %v", err)
	}

	c, err := formats.NewRegistry().Probe("audio", bytes.NewReader(audiotest.WithID3v2(flacData, 300)))
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	defer c.Close()

	if c.Format() != "flac" {
		t.Fatalf("Probe().Format() = %q, want %q", c.Format(), "flac")
	}

	track, err := audio.FirstDecodableTrack(c.Tracks())
	if err != nil {
		t.Fatalf("FirstDecodableTrack() error = %v", err)
	}

	if track.Codec != audio.CodecFLAC || track.SampleRate != 8000 || track.Channels != 2 {
		t.Errorf("track = %+v, want 8000 Hz stereo FLAC", track)
	}

	src, err := c.NewDecoder(track)
	if err != nil {
		t.Fatalf("NewDecoder() error = %v", err)
	}

	var decoded []float32
	buf := make([]float32, 4096)
	for {
		n, err := src.ReadSamples(buf)
		decoded = append(decoded, buf[:n]...)
		if err != nil {
			if !audio.IsEndOfStream(err) {
				t.Fatalf("ReadSamples() error = %v", err)
			}
			break
		}
	}

	if len(decoded) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(decoded), len(samples))
	}

	for i, v := range samples {
		want := float32(v) / 32768
		if decoded[i] != want {
			t.Fatalf("sample %d = %v, want %v", i, decoded[i], want)
		}
	}
}
