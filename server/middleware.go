// SPDX-License-Identifier: EPL-2.0

package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// apiRedirectRouter rewrites unversioned api calls (/api/a-function) to the
// current api version (/api/v1.0/a-function) without an extra round trip.
func (srv *Server) apiRedirectRouter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") && !srv.apiMatch.MatchString(req.URL.Path) {
			req.URL.Path = strings.Replace(req.URL.Path, "/api/", "/api/v"+apiVersion+"/", 1)
		}
		next.ServeHTTP(w, req)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (srv *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		entry := srv.log.WithFields(logrus.Fields{
			"method":   req.Method,
			"path":     req.URL.Path,
			"status":   rec.status,
			"remote":   req.RemoteAddr,
			"duration": time.Since(start),
		})

		if rec.status >= http.StatusInternalServerError {
			entry.Warn("Request failed")
			return
		}
		entry.Debug("Request handled")
	})
}
