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

// Store defines the full CRUD persistence contract, keyed by identifier.
// Read, Update and Delete return an error wrapping ErrNoStore when the
// key does not exist.
type Store interface {
	// Create persists value under key.
	Create(ctx context.Context, key string, value interface{}) error
	// Read returns the value stored under key.
	Read(ctx context.Context, key string) (interface{}, error)
	// Update replaces the value stored under an existing key.
	Update(ctx context.Context, key string, value interface{}) error
	// Delete removes the value stored under key.
	Delete(ctx context.Context, key string) error
}
