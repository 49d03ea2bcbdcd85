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

package validation

import (
	"encoding/json"
	"fmt"
)

// Package validation defines the data-quality validation contract: a
// JSON-defined expectation suite, an abstract evaluation engine, and the
// Validator template that runs one against the other.
//
// The package decides nothing about how an expectation is checked against
// the data; that belongs to the Engine, which downstream projects
// implement per data framework.

// DefaultSuiteName is used when an expectation document carries no name.
const DefaultSuiteName = "validation_suite"

// Expectation is one data-quality check: a type naming the check and the
// keyword arguments parameterizing it, e.g.
//
//	{"expectation_type": "expect_column_to_exist", "kwargs": {"column": "id"}}
type Expectation struct {
	Type   string                 `json:"expectation_type"`
	Kwargs map[string]interface{} `json:"kwargs,omitempty"`
}

// Suite is the JSON-defined expectation document a dataset is validated
// against.
type Suite struct {
	Name         string        `json:"expectation_suite_name"`
	Expectations []Expectation `json:"expectations"`
}

// ParseSuite decodes an expectation document. The suite name defaults to
// DefaultSuiteName; a document with no expectations, or with an
// expectation missing its type, is rejected.
func ParseSuite(doc []byte) (*Suite, error) {
	var s Suite
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, fmt.Errorf("validation: parse suite: %w", err)
	}
	if s.Name == "" {
		s.Name = DefaultSuiteName
	}
	if len(s.Expectations) == 0 {
		return nil, fmt.Errorf("validation: parse suite: no expectations")
	}
	for i, exp := range s.Expectations {
		if exp.Type == "" {
			return nil, fmt.Errorf("validation: parse suite: expectation %d: missing expectation_type", i)
		}
	}
	return &s, nil
}
