package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// intercepts WriteHeader and Write calls to capture response metadata.
//
// It is used by withLogging to observe the HTTP status code and the total
// number of bytes written to the response body after the downstream handler
// has returned, without buffering the response.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	status int

	// wroteHeader guards against forwarding a second WriteHeader to the
	// underlying writer.
	wroteHeader bool

	// size is the running total of bytes successfully written to the
	// response body across all Write calls.
	size int
}

// WriteHeader records the status code and forwards it to the underlying
// [http.ResponseWriter] exactly once. Subsequent calls are no-ops, matching
// the contract of the standard library's response writer.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write writes b to the underlying [http.ResponseWriter], implicitly
// recording a 200 status when WriteHeader has not been called first.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
