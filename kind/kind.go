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

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Kind is the canonical, validated representation of an error kind.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with validated tags.
//
// The value space is closed: every Kind is one of the constants declared in
// kinds.go. Anything else fails Validate.
type Kind string

var (
	// ErrKindInvalid is returned when a value cannot be parsed or validated
	// as a tyl-errors kind.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about the kind tag" vs "this is some other error".
	ErrKindInvalid = errors.New("tylerrors: invalid kind")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind. It is never a valid tag; it exists so that
// parse failures have an explicit value to return.
var Empty Kind = ""

// known is the membership set for the closed taxonomy. Because the set is
// fixed at six entries, a map lookup replaces the shape-validation regexp an
// open registry would need.
var known = map[Kind]struct{}{
	Database:   {},
	Network:    {},
	Validation: {},
	NotFound:   {},
	Internal:   {},
	Custom:     {},
}

// all lists the kinds in stable, documentation order.
var all = []Kind{Database, Network, Validation, NotFound, Internal, Custom}

// Parse takes a user-provided string, normalizes it and validates membership
// in the closed kind set. On success it returns a canonical Kind value.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical kind form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is a member of the kind set —
// callers should still call Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Kind is a member of the closed set.
// The empty kind ("") is considered invalid.
func Validate(k Kind) error {
	return validate(string(k))
}

// All returns the kinds in stable order. The returned slice is a copy and
// may be modified by the caller.
func All() []Kind {
	out := make([]Kind, len(all))
	copy(out, all)
	return out
}

// IsBuiltin reports whether k resolves its classification from the built-in
// table. Every valid kind except Custom is built-in.
func IsBuiltin(k Kind) bool {
	if Validate(k) != nil {
		return false
	}
	return k != Custom
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (k *Kind) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// validate is a helper that checks set membership for the provided string.
func validate(s string) error {
	if _, ok := known[Kind(s)]; !ok {
		return ErrKindInvalid
	}
	return nil
}
