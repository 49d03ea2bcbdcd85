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
)

// Source defines the read-only retrieval contract. Implementations list
// the identifiers matching some criteria and fetch the data behind one.
type Source interface {
	// List returns the identifiers of the items matching criteria.
	List(ctx context.Context, criteria Criteria) ([]string, error)
	// Get returns the data identified by id. Implementations return an
	// error wrapping ErrNoSource when the item does not exist.
	Get(ctx context.Context, id string) (interface{}, error)
}

// SourceChain is a chain element adapting a Source: Execute fetches the
// data identified by the state's id, records it in the state, then
// forwards to the next element. The state keys default to KeyID and
// KeyData.
type SourceChain struct {
	Link
	source Source

	// IDKey selects the state field holding the identifier to fetch;
	// DataKey selects where the retrieved data lands.
	IDKey   string
	DataKey string
}

// NewSourceChain creates a chain element around source using the default
// state keys.
func NewSourceChain(source Source) *SourceChain {
	return &SourceChain{
		source:  source,
		IDKey:   KeyID,
		DataKey: KeyData,
	}
}

// Then appends next at the tail of the chain and returns the head.
func (sc *SourceChain) Then(next Handler) Chain {
	sc.link(next)
	return sc
}

// Execute implements the Handler interface.
func (sc *SourceChain) Execute(ctx context.Context, state State) error {
	if sc.source == nil {
		return fmt.Errorf("source chain: no source configured")
	}
	id, _ := state[sc.IDKey].(string)
	data, err := sc.source.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("source chain: get: %w", err)
	}
	state[sc.DataKey] = data
	return sc.Continue(ctx, state)
}
