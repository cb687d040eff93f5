package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxRequestBodyBytes caps the size of decoded JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// ErrMalformedJSON is returned by DecodeJSON for bodies that are empty,
// oversized, syntactically invalid or followed by trailing data.
var ErrMalformedJSON = errors.New("malformed JSON body")

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// It sets the "Content-Type" header to "application/json". If marshaling
// fails, it responds with 500 Internal Server Error and returns a wrapped
// error.
//
// Example usage:
//
//	WriteJSON(w, models.Response{Success: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes exactly one JSON value from the request body into dst.
// Fields unknown to dst and anything after the value are rejected.
func DecodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedJSON)
	}
	return nil
}
