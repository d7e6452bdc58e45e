// SPDX-License-Identifier: EPL-2.0

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ik5/audwave/waveform"
	"github.com/sirupsen/logrus"
)

// WaveformResponse is the body of a successful waveform request.
type WaveformResponse struct {
	Samples []float32 `json:"samples"`
	Rate    uint16    `json:"rate"`
	Variant int       `json:"variant"`
}

// FormatsResponse lists the registered container formats in probe order.
type FormatsResponse struct {
	Formats []string `json:"formats"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (srv *Server) waveformHdlr(w http.ResponseWriter, req *http.Request) {
	defer req.Body.Close()

	rate, policy, err := parseWaveformQuery(req)
	if err != nil {
		srv.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, req.Body, srv.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			srv.writeJSON(w, http.StatusRequestEntityTooLarge,
				errorResponse{Error: fmt.Sprintf("body exceeds %d bytes", tooLarge.Limit)})
			return
		}
		srv.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unable to read body"})
		return
	}

	samples, err := waveform.Generate(srv.registry, data, waveform.Options{
		SamplesPerSecond: rate,
		Policy:           policy,
	})
	if err != nil {
		srv.log.WithFields(logrus.Fields{
			"function": "waveformHdlr",
			"size":     len(data),
			"error":    err.Error(),
		}).Info("Unable to render waveform")
		srv.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	if rate == 0 {
		rate = waveform.DefaultSamplesPerSecond
	}

	srv.writeJSON(w, http.StatusOK, WaveformResponse{
		Samples: samples,
		Rate:    rate,
		Variant: policy.Variant(),
	})
}

func (srv *Server) formatsHdlr(w http.ResponseWriter, req *http.Request) {
	srv.writeJSON(w, http.StatusOK, FormatsResponse{Formats: srv.registry.Names()})
}

// parseWaveformQuery reads ?rate=N&variant=1|2; both are optional.
func parseWaveformQuery(req *http.Request) (uint16, waveform.Policy, error) {
	q := req.URL.Query()

	var rate uint16
	if s := q.Get("rate"); s != "" {
		v, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid rate %q", s)
		}
		rate = uint16(v)
	}

	policy := waveform.Magnitude
	if s := q.Get("variant"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid variant %q", s)
		}

		policy, err = waveform.ParsePolicy(v)
		if err != nil {
			return 0, 0, err
		}
	}

	return rate, policy, nil
}

func (srv *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		srv.log.WithFields(logrus.Fields{
			"function": "writeJSON",
			"error":    err.Error(),
		}).Warn("Unable to encode response")
	}
}
