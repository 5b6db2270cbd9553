// filepath: internal/api/handlers/utils.go
package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"todohub/internal/services"

	"github.com/gorilla/mux"
)

// maxBodyBytes caps request bodies; payloads are a title and a list id.
const maxBodyBytes = 1 << 20

// parsePathID reads a numeric path variable. The router only admits digits,
// so a failure here means the value does not fit in an int64.
func parsePathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into dst.
func (h *Handlers) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.Logger.WithField("cause", err.Error()).Warn("Failed to decode request body")
		return services.ErrMalformedBody
	}
	return nil
}

// clientAddr identifies the caller for audit events.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
