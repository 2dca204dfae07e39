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

package apis

// Annotation is a single key/value piece of diagnostic metadata attached to
// an error. This is a *view type* — small, transport-friendly, and suitable
// for JSON or proto mapping.
//
// We keep it in apis so that different parts of the system (HTTP/gRPC
// adapters, loggers, metrics) can speak about "annotations" without
// importing the concrete error implementation.
//
// Typical usages:
//   - report which tenant or request the failure belongs to;
//   - report the operation or table that failed;
//   - carry correlation identifiers across service boundaries.
type Annotation struct {
	// Key is the annotation name, e.g. "tenant", "operation", "table".
	Key string `json:"key"`

	// Value is the annotation value. Values are plain strings so that they
	// survive JSON/proto round-trips without type negotiation.
	Value string `json:"value"`
}
