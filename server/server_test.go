// SPDX-License-Identifier: EPL-2.0

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ik5/audwave/formats"
	"github.com/ik5/audwave/internal/audiotest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(maxBody int64) *Server {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return New(Settings{
		MaxBodyBytes: maxBody,
		Registry:     formats.NewRegistry(),
		Logger:       logger,
	})
}

// halfSecondWAV is 0.5 s of 8 kHz mono with a negative spike in the second quarter.
func halfSecondWAV() []byte {
	samples := make([]int16, 4000)
	for i := range samples {
		samples[i] = 2048
	}
	samples[1500] = -16384

	return audiotest.WAV16(8000, 1, samples)
}

func TestWaveformHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		query       string
		wantLen     int
		wantRate    uint16
		wantVariant int
	}{
		{name: "defaults", query: "", wantLen: 50, wantRate: 100, wantVariant: 1},
		{name: "custom rate", query: "?rate=8", wantLen: 4, wantRate: 8, wantVariant: 1},
		{name: "signed variant", query: "?rate=8&variant=2", wantLen: 4, wantRate: 8, wantVariant: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(0)
			req := httptest.NewRequest(http.MethodPost, "/api/v1.0/waveform"+tt.query, bytes.NewReader(halfSecondWAV()))
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

			var resp WaveformResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Len(t, resp.Samples, tt.wantLen)
			assert.Equal(t, tt.wantRate, resp.Rate)
			assert.Equal(t, tt.wantVariant, resp.Variant)
		})
	}
}

func TestWaveformHandler_SignedPeak(t *testing.T) {
	t.Parallel()

	srv := newTestServer(0)
	req := httptest.NewRequest(http.MethodPost, "/api/v1.0/waveform?rate=4&variant=2", bytes.NewReader(halfSecondWAV()))
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp WaveformResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Two blocks of 2000 samples, the spike sits in the first
	assert.Equal(t, []float32{-1, 0.125}, resp.Samples)
}

func TestWaveformHandler_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		body       []byte
		maxBody    int64
		wantStatus int
	}{
		{"rate not a number", "/api/v1.0/waveform?rate=fast", halfSecondWAV(), 0, http.StatusBadRequest},
		{"rate overflows", "/api/v1.0/waveform?rate=70000", halfSecondWAV(), 0, http.StatusBadRequest},
		{"unknown variant", "/api/v1.0/waveform?variant=3", halfSecondWAV(), 0, http.StatusBadRequest},
		{"not audio", "/api/v1.0/waveform", []byte("plain text is not audio"), 0, http.StatusUnprocessableEntity},
		{"body too large", "/api/v1.0/waveform", halfSecondWAV(), 128, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(tt.maxBody)
			req := httptest.NewRequest(http.MethodPost, tt.target, bytes.NewReader(tt.body))
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestWaveformHandler_UnsupportedFormatMessage(t *testing.T) {
	t.Parallel()

	srv := newTestServer(0)
	req := httptest.NewRequest(http.MethodPost, "/api/v1.0/waveform", bytes.NewReader([]byte{0x1A, 0x45, 0xDF, 0xA3}))
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported format")
}

func TestWaveformHandler_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	srv := newTestServer(0)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1.0/waveform", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestFormatsHandler(t *testing.T) {
	t.Parallel()

	srv := newTestServer(0)

	for _, target := range []string{"/api/v1.0/formats", "/api/formats"} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		require.Equal(t, http.StatusOK, rec.Code, target)

		var resp FormatsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"wav", "aiff", "flac", "ogg", "mp3"}, resp.Formats, target)
	}
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := New(Settings{Address: "127.0.0.1:0", Logger: logrus.New()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe did not return after cancel")
	}
}
