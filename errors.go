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

import "errors"

// This file contains the sentinel errors shared by the storage contracts.
// Implementations wrap them (fmt.Errorf with %w) so callers can test with
// errors.Is while still seeing backend-specific detail.

// ErrNoSource is returned by Source implementations when the requested
// item does not exist.
var ErrNoSource = errors.New("dataops: no such source item")

// ErrNoStore is returned by Store implementations when the requested key
// does not exist.
var ErrNoStore = errors.New("dataops: no such store key")
