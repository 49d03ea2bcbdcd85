//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Copyright (C) 2025 tgedr
//
// This file is part of dataops.
//
// dataops is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dataops is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dataops. If not, see https://www.gnu.org/licenses/.

package dataops

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSource is a trivial in-memory Source for conformance testing.
// List honors an optional "prefix" criteria field.
type memSource struct {
	items map[string]interface{}
}

var _ Source = (*memSource)(nil)

func (s *memSource) List(ctx context.Context, criteria Criteria) ([]string, error) {
	prefix, _ := criteria["prefix"].(string)
	var ids []string
	for id := range s.items {
		if strings.HasPrefix(id, prefix) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *memSource) Get(ctx context.Context, id string) (interface{}, error) {
	v, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrNoSource)
	}
	return v, nil
}

func newMemSource() *memSource {
	return &memSource{items: map[string]interface{}{
		"orders/2025-01": "january orders",
		"orders/2025-02": "february orders",
		"events/2025-01": "january events",
	}}
}

func TestSource_List(t *testing.T) {
	source := newMemSource()
	ctx := context.Background()

	ids, err := source.List(ctx, Criteria{})
	require.NoError(t, err)
	assert.Len(t, ids, 3)

	ids, err = source.List(ctx, Criteria{"prefix": "orders/"})
	require.NoError(t, err)
	assert.Equal(t, []string{"orders/2025-01", "orders/2025-02"}, ids)
}

func TestSource_Get(t *testing.T) {
	source := newMemSource()

	data, err := source.Get(context.Background(), "orders/2025-01")
	require.NoError(t, err)
	assert.Equal(t, "january orders", data)
}

func TestSource_GetMissingIsErrNoSource(t *testing.T) {
	source := newMemSource()

	_, err := source.Get(context.Background(), "orders/2030-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestSourceChain_Execute(t *testing.T) {
	source := newMemSource()
	chain := NewSourceChain(source)

	state := State{KeyID: "events/2025-01"}
	require.NoError(t, chain.Execute(context.Background(), state))
	assert.Equal(t, "january events", state[KeyData])
}

func TestSourceChain_FeedsDownstreamSink(t *testing.T) {
	source := newMemSource()
	sink := newMemSink()

	chain := NewSourceChain(source).Then(NewSinkChain(sink))

	state := State{
		KeyID:          "orders/2025-02",
		KeyDestination: "archive/orders",
	}
	require.NoError(t, chain.Execute(context.Background(), state))
	assert.Equal(t, "february orders", sink.data["archive/orders"])
}

func TestSourceChain_MissingIDStopsChain(t *testing.T) {
	source := newMemSource()
	chain := NewSourceChain(source)

	err := chain.Execute(context.Background(), State{KeyID: "nope"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestSourceChain_NoSource(t *testing.T) {
	err := (&SourceChain{}).Execute(context.Background(), State{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no source")
}
