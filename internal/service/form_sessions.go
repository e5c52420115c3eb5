// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
)

// FormFactory builds a controller hydrated from persistent storage.
type FormFactory func(ctx context.Context) (FormController, error)

type formSessions struct {
	factory FormFactory

	mu      sync.Mutex
	current FormController
}

// NewFormSessions returns a [FormSessions] that keeps at most one live
// controller built by factory.
func NewFormSessions(factory FormFactory) FormSessions {
	return &formSessions{factory: factory}
}

func (s *formSessions) Current(ctx context.Context) (FormController, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		return s.current, nil
	}

	form, err := s.factory(ctx)
	if err != nil {
		return nil, err
	}
	s.current = form

	return form, nil
}

func (s *formSessions) End() {
	s.mu.Lock()
	current := s.current
	s.current = nil
	s.mu.Unlock()

	if current != nil {
		current.Close()
	}
}
