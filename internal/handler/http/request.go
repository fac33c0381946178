package http

import (
	"encoding/json"
	"net/http"
)

// maxRequestBody caps JSON request bodies at 1 MiB. Every payload this
// API accepts is a few hundred bytes.
const maxRequestBody = 1 << 20

// decodeJSON decodes a request body into dst, rejecting unknown fields
// so typos in field names fail loudly instead of being dropped.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}
