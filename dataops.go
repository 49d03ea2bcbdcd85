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

// Package dataops defines the capability contracts shared by data-engineering
// projects: a sequential processing chain, an ETL skeleton, a generic
// processor, and the storage-oriented roles sink, source and store.
//
// The package declares contracts and the thin composition glue around them;
// every concrete backend (a database store, an object-storage sink, a real
// ETL job) lives in downstream projects that implement these interfaces.
//
// Core concepts:
//   - Processor: transforms data held in a shared State.
//   - Handler / Chain: sequential composition of processing elements.
//   - Etl / Runner: extract-transform-load skeleton with an orchestrated run.
//   - Sink: write-only persistence (Put, Delete).
//   - Source: read-only retrieval (List, Get).
//   - Store: full CRUD persistence keyed by identifier.

// State is the mutable context threaded through chain execution and
// processing. Each element reads and writes the fields it cares about;
// downstream implementers own the key vocabulary.
type State map[string]interface{}

// Criteria narrows a Source listing. Interpretation of the fields is
// entirely up to the implementation.
type Criteria map[string]interface{}

// Well-known State keys used by the chain adapters. Elements can be
// re-keyed individually when a pipeline needs several of them.
const (
	// KeyData holds the payload a SinkChain writes and a SourceChain stores.
	KeyData = "data"
	// KeyDestination holds the destination a SinkChain writes to.
	KeyDestination = "destination"
	// KeyID holds the identifier a SourceChain retrieves.
	KeyID = "id"
)
