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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-yaml-life/tyl-errors/kind"
)

func TestResult_OkAndFail(t *testing.T) {
	ok := Ok(42)
	assert.True(t, ok.IsOk())
	v, err := ok.Unpack()
	assert.Equal(t, 42, v)
	assert.Nil(t, err)

	fail := Fail[int](Internal("boom"))
	assert.False(t, fail.IsOk())
	_, ferr := fail.Unpack()
	require.NotNil(t, ferr)
	assert.Equal(t, kind.Internal, ferr.Kind)
}

func TestFrom_NilStaysNil(t *testing.T) {
	assert.Nil(t, From(nil))
	assert.Nil(t, Wrap(nil, "ctx"))
	assert.Nil(t, WrapAs(nil, kind.Network, "ctx"))
}

func TestFrom_PassesThroughLibraryErrors(t *testing.T) {
	orig := Database("query", "deadlock")
	assert.Same(t, orig, From(orig))

	wrapped := fmt.Errorf("outer: %w", orig)
	assert.Same(t, orig, From(wrapped))
}

func TestFrom_ForeignBecomesInternal(t *testing.T) {
	e := From(errors.New("disk full"))
	require.NotNil(t, e)
	assert.Equal(t, kind.Internal, e.Kind)
	assert.Equal(t, "disk full", e.Message)
	assert.True(t, errors.Is(e, e.Cause))
}

func TestWrap_PrefixesMessage(t *testing.T) {
	e := Wrap(errors.New("disk full"), "flushing cache")
	require.NotNil(t, e)
	assert.Equal(t, kind.Internal, e.Kind)
	assert.Equal(t, "flushing cache: disk full", e.Message)
}

func TestWrapAs_AssignsKind(t *testing.T) {
	root := errors.New("connection refused")
	e := WrapAs(root, kind.Network, "dialing broker")
	require.NotNil(t, e)
	assert.Equal(t, kind.Network, e.Kind)
	assert.True(t, e.Category().IsRetriable())
	assert.True(t, errors.Is(e, root))
}

func TestWrapAs_InvalidKindFallsBackToInternal(t *testing.T) {
	e := WrapAs(errors.New("x"), kind.Kind("bogus"), "op")
	assert.Equal(t, kind.Internal, e.Kind)

	// Custom requires an owned classifier, which WrapAs cannot supply.
	e = WrapAs(errors.New("x"), kind.Custom, "op")
	assert.Equal(t, kind.Internal, e.Kind)
}
