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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/the-yaml-life/tyl-errors/kind"
)

// defaultHTTP defines the library's built-in HTTP mappings for the kind
// taxonomy. These are only defaults: callers are expected to override them
// at the boundary where HTTP is actually produced (REST gateway, HTTP
// handler, etc.).
//
// The retriable kinds deliberately map to 503 rather than 502/504 so that
// standard client backoff behavior kicks in.
var defaultHTTP = map[kind.Kind]int{
	kind.Database:   http.StatusServiceUnavailable,  // Datastore unreachable or failing; worth retrying after backoff.
	kind.Network:    http.StatusServiceUnavailable,  // Transport-level failure; worth retrying after backoff.
	kind.Validation: http.StatusBadRequest,          // Malformed input; the client must change the request.
	kind.NotFound:   http.StatusNotFound,            // Target resource does not exist (or is not visible to the caller).
	kind.Internal:   http.StatusInternalServerError, // Generic internal failure; do not expose internal details.
	kind.Custom:     http.StatusInternalServerError, // Unknown category; prefix rules refine this per deployment.
}

// defaultGRPC defines the library's built-in gRPC mappings for the kind
// taxonomy, aligned with canonical gRPC status semantics. As with HTTP,
// callers may override these at the transport edge if a different policy is
// required.
var defaultGRPC = map[kind.Kind]codes.Code{
	kind.Database:   codes.Unavailable,     // Datastore temporarily unavailable.
	kind.Network:    codes.Unavailable,     // Transport failure; safe to retry per the error's schedule.
	kind.Validation: codes.InvalidArgument, // Bad input shape or validation errors.
	kind.NotFound:   codes.NotFound,        // Resource does not exist (or not visible).
	kind.Internal:   codes.Internal,        // Unexpected server-side failure.
	kind.Custom:     codes.Unknown,         // Caller-defined classification with no registered rule.
}
