package server

import (
	"net/http"
	"seichi-game-api/internal/constants"
)

// NewHTTPServer serves handler over HTTP/1.1 and cleartext HTTP/2 on the same
// port. gRPC clients need HTTP/2, Connect and gRPC-Web clients work with either.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	var protocols http.Protocols
	protocols.SetHTTP1(true)
	protocols.SetUnencryptedHTTP2(true)

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		Protocols:         &protocols,
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}
}
