package htcore

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// WriteText writes text to HTTP response.
func WriteText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(text)))

	w.WriteHeader(http.StatusOK)

	_, _ = w.Write([]byte(text))
}

// WriteJSON writes value encoded as JSON to HTTP response.
//
// Remarks:
//   - If the value can't be encoded, HTTP 500 is returned with the error text.
func WriteJSON(w http.ResponseWriter, value any) {
	buf, err := json.Marshal(value)
	if err != nil {
		WriteError(w, err)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(buf)))

	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(buf)
}

// WriteError writes the stringified error to HTTP response with HTTP 500 code.
func WriteError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	w.WriteHeader(http.StatusInternalServerError)

	_, _ = w.Write([]byte(err.Error()))
}
