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

import "context"

// Processor defines the contract for data transformation operations.
// Implementations read their input and configuration from the shared state
// and return the processed result; they may also record it back into the
// state for downstream elements.
type Processor interface {
	// Process transforms the data held in state and returns the result.
	Process(ctx context.Context, state State) (interface{}, error)
}

// ProcessorFunc is a function adapter for the Processor interface.
// Allows ordinary functions to be used as Processors.
type ProcessorFunc func(ctx context.Context, state State) (interface{}, error)

// Process implements the Processor interface for ProcessorFunc.
func (f ProcessorFunc) Process(ctx context.Context, state State) (interface{}, error) {
	return f(ctx, state)
}
