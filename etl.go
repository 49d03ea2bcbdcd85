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

	"github.com/rs/zerolog"
)

// Etl defines the contract for extract-transform-load jobs. Implementations
// carry their own configuration and intermediate data; the three phases are
// orchestrated by a Runner.
type Etl interface {
	// Extract produces the raw data from the job's configuration.
	Extract(ctx context.Context) error
	// Transform produces processed data from the extracted data.
	Transform(ctx context.Context) error
	// Load persists the processed data and returns the result of the run.
	Load(ctx context.Context) (interface{}, error)
}

// ExtractValidator is an optional upgrade for Etl implementations that
// want extra checks after the extract phase.
type ExtractValidator interface {
	ValidateExtract(ctx context.Context) error
}

// TransformValidator is an optional upgrade for Etl implementations that
// want extra checks after the transform phase.
type TransformValidator interface {
	ValidateTransform(ctx context.Context) error
}

// Runner orchestrates an Etl job: extract, validate-extract, transform,
// validate-transform, load, in order, stopping at the first error. The
// validate phases only run when the job implements the matching optional
// interface.
type Runner struct {
	log zerolog.Logger
}

// NewRunner creates a Runner. The logger is a no-op until set with WithLogger.
func NewRunner() *Runner {
	return &Runner{log: zerolog.Nop()}
}

// WithLogger sets the structured logger used around each run.
// Returns the runner for chaining.
func (r *Runner) WithLogger(log zerolog.Logger) *Runner {
	r.log = log
	return r
}

// Run executes the complete ETL workflow for job and returns the result
// of the load phase.
func (r *Runner) Run(ctx context.Context, job Etl) (interface{}, error) {
	r.log.Info().Msg("etl run started")

	if err := job.Extract(ctx); err != nil {
		return nil, fmt.Errorf("etl: extract: %w", err)
	}
	if v, ok := job.(ExtractValidator); ok {
		if err := v.ValidateExtract(ctx); err != nil {
			return nil, fmt.Errorf("etl: validate extract: %w", err)
		}
	}

	if err := job.Transform(ctx); err != nil {
		return nil, fmt.Errorf("etl: transform: %w", err)
	}
	if v, ok := job.(TransformValidator); ok {
		if err := v.ValidateTransform(ctx); err != nil {
			return nil, fmt.Errorf("etl: validate transform: %w", err)
		}
	}

	result, err := job.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("etl: load: %w", err)
	}

	r.log.Info().Interface("result", result).Msg("etl run finished")
	return result, nil
}

// Run executes job with a silent Runner. Convenience for callers that do
// not need logging.
func Run(ctx context.Context, job Etl) (interface{}, error) {
	return NewRunner().Run(ctx, job)
}
