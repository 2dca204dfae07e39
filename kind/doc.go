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

// Package kind defines the closed set of error kinds used by tyl-errors,
// plus parsing, normalization and validation for kind tags.
//
// A "kind" is the top-level, machine-readable classification of an error,
// such as "database", "network" or "not_found". Kinds are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and for lookup in the built-in
//     classification table.
//
// Unlike open-ended code registries, the kind set is CLOSED: the only
// extension point is the Custom kind, which delegates classification to a
// caller-supplied value. Parsing therefore validates membership, not shape.
//
// IMPORTANT: Empty kinds ("") are NOT allowed. Every error MUST have a
// non-empty kind.
package kind
