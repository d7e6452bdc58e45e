// SPDX-License-Identifier: EPL-2.0

package server

func (srv *Server) routes() {
	srv.router.HandleFunc("/api/v1.0/waveform", srv.waveformHdlr).Methods("POST")
	srv.router.HandleFunc("/api/v1.0/formats", srv.formatsHdlr).Methods("GET")
}
