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

package tylerrors

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Pair is one ordered key/value annotation on a Context.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Context is the diagnostic companion of an Error: a unique identity, the
// moment of occurrence, ordered key/value metadata, and an optional chain of
// prior contexts describing how the failure propagated.
//
// Metadata preserves insertion order. Setting an existing key overwrites its
// value in place without moving it, so serialized output is reproducible for
// a given construction sequence.
//
// The cause chain is forward-only: contexts link parent to cause and a
// context never appears twice in its own chain, so traversal terminates.
type Context struct {
	id       uuid.UUID
	occurred time.Time
	metadata []Pair
	cause    *Context
}

// NewContext creates a context with a fresh random identity, the current UTC
// time, and no metadata.
func NewContext() *Context {
	return &Context{
		id:       uuid.New(),
		occurred: time.Now().UTC(),
	}
}

// NewContextWithCause creates a fresh context chained onto the given cause.
// Shorthand for NewContext().WithCause(cause).
func NewContextWithCause(cause *Context) *Context {
	return NewContext().WithCause(cause)
}

// ID returns the unique identity of this context.
func (c *Context) ID() uuid.UUID { return c.id }

// OccurredAt returns the UTC creation time of this context.
func (c *Context) OccurredAt() time.Time { return c.occurred }

// Cause returns the chained prior context, or nil.
func (c *Context) Cause() *Context { return c.cause }

// WithMetadata returns a copy of c with key set to value. A new key appends;
// an existing key is overwritten in place, keeping its original position.
// Identity and timestamp carry over unchanged.
func (c *Context) WithMetadata(key, value string) *Context {
	cp := c.clone()
	for i := range cp.metadata {
		if cp.metadata[i].Key == key {
			cp.metadata[i].Value = value
			return cp
		}
	}
	cp.metadata = append(cp.metadata, Pair{Key: key, Value: value})
	return cp
}

// WithCause returns a copy of c chained onto the given cause context. The
// cause is cloned, so the two chains share no state. If cause already
// contains c's identity anywhere in its chain, the link is dropped to keep
// the chain acyclic.
func (c *Context) WithCause(cause *Context) *Context {
	cp := c.clone()
	if cause == nil || cause.contains(cp.id) {
		cp.cause = nil
		return cp
	}
	cp.cause = cause.clone()
	return cp
}

// Get returns the value for key and whether it was present.
func (c *Context) Get(key string) (string, bool) {
	for _, p := range c.metadata {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Metadata returns the annotations in insertion order. The slice is a copy;
// mutating it does not affect the context.
func (c *Context) Metadata() []Pair {
	if len(c.metadata) == 0 {
		return nil
	}
	out := make([]Pair, len(c.metadata))
	copy(out, c.metadata)
	return out
}

// Depth returns the number of contexts in the chain, this one included.
func (c *Context) Depth() int {
	n := 0
	for cur := c; cur != nil; cur = cur.cause {
		n++
	}
	return n
}

// Chain returns the contexts front-to-back: this one first, the original
// failure last.
func (c *Context) Chain() []*Context {
	out := make([]*Context, 0, c.Depth())
	for cur := c; cur != nil; cur = cur.cause {
		out = append(out, cur)
	}
	return out
}

// Root returns the deepest context in the chain (the original failure).
func (c *Context) Root() *Context {
	cur := c
	for cur.cause != nil {
		cur = cur.cause
	}
	return cur
}

func (c *Context) contains(id uuid.UUID) bool {
	for cur := c; cur != nil; cur = cur.cause {
		if cur.id == id {
			return true
		}
	}
	return false
}

// clone deep-copies the context and its whole cause chain.
func (c *Context) clone() *Context {
	if c == nil {
		return nil
	}
	cp := &Context{id: c.id, occurred: c.occurred}
	if len(c.metadata) > 0 {
		cp.metadata = make([]Pair, len(c.metadata))
		copy(cp.metadata, c.metadata)
	}
	cp.cause = c.cause.clone()
	return cp
}

// contextJSON is the wire shape of a Context. Metadata serializes as an
// array of pairs rather than an object so insertion order survives the
// round trip.
type contextJSON struct {
	ErrorID    uuid.UUID    `json:"error_id"`
	OccurredAt time.Time    `json:"occurred_at"`
	Metadata   []Pair       `json:"metadata,omitempty"`
	Cause      *contextJSON `json:"cause,omitempty"`
}

func (c *Context) toJSON() *contextJSON {
	if c == nil {
		return nil
	}
	return &contextJSON{
		ErrorID:    c.id,
		OccurredAt: c.occurred,
		Metadata:   c.Metadata(),
		Cause:      c.cause.toJSON(),
	}
}

func fromJSON(w *contextJSON) *Context {
	if w == nil {
		return nil
	}
	return &Context{
		id:       w.ErrorID,
		occurred: w.OccurredAt,
		metadata: w.Metadata,
		cause:    fromJSON(w.Cause),
	}
}

// MarshalJSON implements json.Marshaler.
func (c *Context) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toJSON())
}

// UnmarshalJSON implements json.Unmarshaler. Identity and timestamp are
// restored exactly as serialized; no fresh identity is minted.
func (c *Context) UnmarshalJSON(data []byte) error {
	var w contextJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*c = *fromJSON(&w)
	return nil
}
