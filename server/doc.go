// SPDX-License-Identifier: EPL-2.0

// Package server exposes waveform rendering over HTTP.
//
// Routes, all under /api/v1.0 (unversioned /api/... paths are rewritten):
//
//	POST /api/v1.0/waveform?rate=100&variant=1   body: the audio file
//	GET  /api/v1.0/formats
//
// A successful waveform request answers with
//
//	{"samples":[0.1,0.8,1],"rate":100,"variant":1}
//
// Undecodable audio gives 422, a malformed query 400 and an oversized
// body 413, each with {"error":"..."}.
package server
