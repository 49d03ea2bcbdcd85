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

// Sink defines the write-only persistence contract. Implementations put
// data at a destination and delete it; where the destination lives (a
// bucket, a table, a path) is entirely their own.
type Sink interface {
	// Put writes data at destination.
	Put(ctx context.Context, data interface{}, destination string) error
	// Delete removes whatever is at destination.
	Delete(ctx context.Context, destination string) error
}

// SinkChain is a chain element adapting a Sink: Execute writes the
// state's data at the state's destination, then forwards to the next
// element. The state keys default to KeyData and KeyDestination.
type SinkChain struct {
	Link
	sink Sink

	// DataKey and DestinationKey select which state fields feed Put.
	DataKey        string
	DestinationKey string
}

// NewSinkChain creates a chain element around sink using the default
// state keys.
func NewSinkChain(sink Sink) *SinkChain {
	return &SinkChain{
		sink:           sink,
		DataKey:        KeyData,
		DestinationKey: KeyDestination,
	}
}

// Then appends next at the tail of the chain and returns the head.
func (sc *SinkChain) Then(next Handler) Chain {
	sc.link(next)
	return sc
}

// Execute implements the Handler interface.
func (sc *SinkChain) Execute(ctx context.Context, state State) error {
	if sc.sink == nil {
		return fmt.Errorf("sink chain: no sink configured")
	}
	destination, _ := state[sc.DestinationKey].(string)
	if err := sc.sink.Put(ctx, state[sc.DataKey], destination); err != nil {
		return fmt.Errorf("sink chain: put: %w", err)
	}
	return sc.Continue(ctx, state)
}
