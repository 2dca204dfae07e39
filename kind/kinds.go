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

package kind

// The closed tyl-errors kind set.
//
// These six tags are the entire taxonomy. New failure categories do not get
// new tags; they are expressed through Custom with a caller-supplied
// classifier. Keeping the set closed is what lets the built-in
// classification table stay constant, total, and lookup-only.
const (
	// Database indicates a failure while talking to a datastore: timeouts,
	// broken connections, failed transactions.
	// Retriable with short exponential backoff — most datastore hiccups are
	// transient and resolve within a few attempts.
	//
	// Transport mappers typically surface this as HTTP 503.
	Database Kind = "database"

	// Network indicates a failure at the transport level between services:
	// DNS resolution, connection refused, request timeout.
	// Retriable with a slightly longer backoff schedule than Database,
	// since network partitions tend to outlive datastore blips.
	//
	// Transport mappers typically surface this as HTTP 503.
	Network Kind = "network"

	// Validation indicates that input violated a structural or semantic
	// invariant: wrong format, out of range, missing field.
	// Never retriable — the same input will fail the same way.
	//
	// Transport mappers typically surface this as HTTP 400.
	Validation Kind = "validation"

	// NotFound indicates that a referenced entity does not exist in the
	// current scope or storage. Lookups by ID, name, key, or reference.
	// Never retriable — absence does not heal on retry.
	//
	// Transport mappers typically surface this as HTTP 404.
	NotFound Kind = "not_found"

	// Internal indicates an unclassified failure inside the service itself.
	// Use this as the fallback when no more specific kind applies; the root
	// cause is typically attached as the error cause.
	// Never retriable by default — retrying unknown failures is a caller
	// policy decision, expressed through Custom if needed.
	//
	// Transport mappers typically surface this as HTTP 500.
	Internal Kind = "internal"

	// Custom is the taxonomy's sole extension point. An error tagged Custom
	// owns a caller-supplied classifier that answers retriability, backoff
	// and display-name queries; all other kinds resolve those from the
	// built-in table.
	//
	// The classifier never serializes. A Custom error decoded from the wire
	// falls back to the documented default classification (non-retriable,
	// internal-equivalent).
	Custom Kind = "custom"
)
