/*
   Copyright 2025 The TYL Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package httpx renders tyl-errors over HTTP: status resolution via an
// apis.Mapper, a JSON body in the apis.ErrorView shape, and Retry-After
// hints derived from the error's own backoff schedule.
package httpx

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	tylerrors "github.com/the-yaml-life/tyl-errors"
	"github.com/the-yaml-life/tyl-errors/adapter"
	"github.com/the-yaml-life/tyl-errors/apis"
)

// Meta carries extra context that the HTTP layer can add on top of the error.
// All fields are optional and typically come from request context, headers,
// or router-level logic.
type Meta struct {
	Correlation string
	TraceID     string
	SpanID      string
}

// payload is the wire shape of an HTTP error response: the shared ErrorView
// plus HTTP-specific envelope fields.
type payload struct {
	apis.ErrorView
	Correlation       string `json:"correlation,omitempty"`
	TraceID           string `json:"trace_id,omitempty"`
	SpanID            string `json:"span_id,omitempty"`
	RetryAfterSeconds int64  `json:"retry_after_seconds,omitempty"`
}

// Writer is a thin adapter that knows how to turn a tylerrors.Error into an
// HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the HTTP status via the Mapper and writes a JSON body in
// the apis.ErrorView shape. For retriable errors a Retry-After header is
// derived from the error's first-attempt delay, rounded up to whole seconds.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err *tylerrors.Error, meta Meta) {
	if err == nil {
		return
	}

	st := w.Mapper.Status(err.Kind, err.ErrorCategory())

	body := payload{
		ErrorView:   adapter.ToView(err),
		Correlation: meta.Correlation,
		TraceID:     meta.TraceID,
		SpanID:      meta.SpanID,
	}
	if err.Retriable() {
		body.RetryAfterSeconds = retryAfterSeconds(err)
	}

	rw.Header().Set("Content-Type", "application/json")
	if body.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.FormatInt(body.RetryAfterSeconds, 10))
	}
	rw.WriteHeader(st.HTTP)

	_ = json.NewEncoder(rw).Encode(body)
}

// retryAfterSeconds converts the error's first-attempt delay into whole
// seconds, rounding up so sub-second schedules still produce a usable header.
func retryAfterSeconds(err *tylerrors.Error) int64 {
	d := err.RetryAfter(0)
	if d <= 0 {
		return 0
	}
	return int64(math.Ceil(d.Seconds()))
}
