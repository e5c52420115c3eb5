// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package objecturl issues short-lived URLs for in-memory file contents.
//
// A URL stays resolvable until it is revoked. Revoking twice is a no-op and
// URLs are never reissued, so a stale reference cannot resolve to a newer
// file.
package objecturl

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/invoice-entry/models"
)

// Scheme prefixes every URL created by a [Registry].
const Scheme = "blob:"

// ErrNotFound is returned by [Registry.Resolve] for unknown or revoked URLs.
var ErrNotFound = errors.New("object url not found")

// Registry maps live object URLs to file contents.
type Registry struct {
	mu      sync.RWMutex
	objects map[string]models.PdfFile
	revoked int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{objects: make(map[string]models.PdfFile)}
}

// Create registers a copy of file and returns its URL.
func (r *Registry) Create(file models.PdfFile) string {
	file.Content = slices.Clone(file.Content)
	url := Scheme + uuid.NewString()

	r.mu.Lock()
	r.objects[url] = file
	r.mu.Unlock()

	return url
}

// Revoke releases url. It reports whether url was live.
func (r *Registry) Revoke(url string) bool {
	if url == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.objects[url]; !ok {
		return false
	}
	delete(r.objects, url)
	r.revoked++
	return true
}

// Resolve returns a copy of the file behind url.
func (r *Registry) Resolve(url string) (models.PdfFile, error) {
	r.mu.RLock()
	file, ok := r.objects[url]
	r.mu.RUnlock()

	if !ok {
		return models.PdfFile{}, ErrNotFound
	}
	file.Content = slices.Clone(file.Content)
	return file, nil
}

// ResolveID is [Registry.Resolve] for the part of the URL after the scheme.
func (r *Registry) ResolveID(id string) (models.PdfFile, error) {
	if id == "" || strings.Contains(id, ":") {
		return models.PdfFile{}, ErrNotFound
	}
	return r.Resolve(Scheme + id)
}

// Live returns the number of URLs that have not been revoked.
func (r *Registry) Live() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.objects)
}

// Revoked returns how many URLs have been revoked so far.
func (r *Registry) Revoked() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revoked
}

// ID strips the scheme from url.
func ID(url string) string {
	return strings.TrimPrefix(url, Scheme)
}
