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
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Engine evaluates a single expectation against a dataset. This is the
// seam concrete validation backends implement: a dataframe engine, a
// SQL engine, a plain record-slice engine, each knowing how to check the
// expectation types it supports against its data representation.
type Engine interface {
	Evaluate(ctx context.Context, data interface{}, exp Expectation) (ExpectationResult, error)
}

// EngineFunc is a function adapter for the Engine interface.
type EngineFunc func(ctx context.Context, data interface{}, exp Expectation) (ExpectationResult, error)

// Evaluate implements the Engine interface for EngineFunc.
func (f EngineFunc) Evaluate(ctx context.Context, data interface{}, exp Expectation) (ExpectationResult, error) {
	return f(ctx, data, exp)
}

// ExpectationResult is the outcome of one expectation.
type ExpectationResult struct {
	Expectation Expectation            `json:"expectation_config"`
	Success     bool                   `json:"success"`
	Details     map[string]interface{} `json:"result,omitempty"`
}

// Result is the outcome of a whole suite: overall success plus the
// per-expectation outcomes of the failures only.
type Result struct {
	Success bool                `json:"success"`
	Results []ExpectationResult `json:"results"`
}

// ValidationError wraps any failure inside a validation run.
type ValidationError struct {
	Op  string
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %v", e.Op, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validator runs an expectation suite against a dataset through an
// Engine. It owns the orchestration only: iteration, failure
// aggregation and error wrapping.
type Validator struct {
	engine Engine
	log    zerolog.Logger
}

// NewValidator creates a Validator over engine. The logger is a no-op
// until set with WithLogger.
func NewValidator(engine Engine) *Validator {
	return &Validator{engine: engine, log: zerolog.Nop()}
}

// WithLogger sets the structured logger used around each validation.
// Returns the validator for chaining.
func (v *Validator) WithLogger(log zerolog.Logger) *Validator {
	v.log = log
	return v
}

// Validate checks data against every expectation in the suite and
// returns the aggregate result, carrying only the failed expectations.
// Any engine failure aborts the run with a *ValidationError.
func (v *Validator) Validate(ctx context.Context, data interface{}, suite *Suite) (*Result, error) {
	if v.engine == nil {
		return nil, &ValidationError{Op: "validate", Err: errors.New("no engine configured")}
	}
	if suite == nil || len(suite.Expectations) == 0 {
		return nil, &ValidationError{Op: "validate", Err: errors.New("empty expectation suite")}
	}

	v.log.Info().
		Str("suite", suite.Name).
		Int("expectations", len(suite.Expectations)).
		Msg("validation started")

	result := &Result{Success: true}
	for _, exp := range suite.Expectations {
		er, err := v.engine.Evaluate(ctx, data, exp)
		if err != nil {
			return nil, &ValidationError{Op: exp.Type, Err: err}
		}
		if !er.Success {
			result.Success = false
			result.Results = append(result.Results, er)
		}
	}

	v.log.Info().
		Str("suite", suite.Name).
		Bool("success", result.Success).
		Int("failures", len(result.Results)).
		Msg("validation finished")
	return result, nil
}
