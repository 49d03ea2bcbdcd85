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

// This file contains the chain-of-responsibility contracts: handlers,
// chains and the embeddable Link plumbing that forwards execution from
// one element to the next.

// Handler is one element of a sequential processing chain.
type Handler interface {
	// Execute runs this element against the shared state.
	Execute(ctx context.Context, state State) error
}

// HandlerFunc is a function adapter for the Handler interface.
// Allows ordinary functions to be used as chain elements.
type HandlerFunc func(ctx context.Context, state State) error

// Execute implements the Handler interface for HandlerFunc.
func (f HandlerFunc) Execute(ctx context.Context, state State) error {
	return f(ctx, state)
}

// Chain is a handler that composes others for in-order execution.
// Then appends at the tail and returns the head, so chains read fluently:
//
//	chain := dataops.NewProcessorChain(start).
//		Then(dataops.NewProcessorChain(addOne)).
//		Then(dataops.NewProcessorChain(show))
//	err := chain.Execute(ctx, state)
type Chain interface {
	Handler
	// Then appends next at the tail of the chain and returns the head.
	Then(next Handler) Chain
}

// element is what interior chain nodes must satisfy: executable and able
// to keep appending. Bare handlers are wrapped on insertion so the chain
// always forwards past them.
type element interface {
	Handler
	link(next Handler)
}

// Link is the embeddable chain plumbing. A chain element embeds Link,
// implements Execute with its own work, and ends with Continue to hand
// the state to the rest of the chain.
type Link struct {
	next Handler
}

// link appends next at the tail of the chain, walking forward the way
// the fluent Then contract requires. next field invariant: once set, it
// always satisfies element.
func (l *Link) link(next Handler) {
	if l.next == nil {
		l.next = asElement(next)
		return
	}
	l.next.(element).link(next)
}

// Next returns the downstream handler, or nil at the tail.
func (l *Link) Next() Handler {
	return l.next
}

// Continue forwards execution to the next element, if any.
func (l *Link) Continue(ctx context.Context, state State) error {
	if l.next == nil {
		return nil
	}
	return l.next.Execute(ctx, state)
}

// asElement wraps bare handlers so interior nodes keep forwarding.
func asElement(h Handler) Handler {
	if _, ok := h.(element); ok {
		return h
	}
	return &handlerElement{h: h}
}

// handlerElement adapts a plain Handler into a forwarding chain node.
type handlerElement struct {
	Link
	h Handler
}

func (e *handlerElement) Execute(ctx context.Context, state State) error {
	if err := e.h.Execute(ctx, state); err != nil {
		return err
	}
	return e.Continue(ctx, state)
}

// ProcessorChain is a chain element wrapping a Processor: Execute runs
// the processor against the state, then forwards to the next element.
type ProcessorChain struct {
	Link
	proc Processor
}

// NewProcessorChain creates a chain element around proc.
func NewProcessorChain(proc Processor) *ProcessorChain {
	return &ProcessorChain{proc: proc}
}

// Then appends next at the tail of the chain and returns the head.
func (pc *ProcessorChain) Then(next Handler) Chain {
	pc.link(next)
	return pc
}

// Execute implements the Handler interface.
func (pc *ProcessorChain) Execute(ctx context.Context, state State) error {
	if pc.proc == nil {
		return fmt.Errorf("chain: no processor configured")
	}
	if _, err := pc.proc.Process(ctx, state); err != nil {
		return fmt.Errorf("chain: process: %w", err)
	}
	return pc.Continue(ctx, state)
}
