// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package fetch loads service descriptions from files, repository
// checkouts and HTTP URLs.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/albertocavalcante/apinames/model"
)

// MaxDescriptionSize bounds the size of a description read over HTTP.
const MaxDescriptionSize = 32 << 20

// Options configures how to fetch a service description.
type Options struct {
	// Location is a file path or an http(s) URL.
	Location string

	// RepoDir is a path to a repository checkout. If set, Location is
	// resolved relative to it and the checkout's commit is recorded.
	RepoDir string

	// Timeout for network operations.
	Timeout time.Duration

	// Client is used for URL locations. Nil means http.DefaultClient.
	Client *http.Client
}

// Result contains the fetched description and metadata.
type Result struct {
	// Service is the parsed service description.
	Service *model.Service

	// CommitHash is the git commit hash (if read from a checkout).
	CommitHash string

	// Source describes where the description was loaded from.
	Source string
}

// Fetch retrieves and parses a service description.
func Fetch(ctx context.Context, opts Options) (*Result, error) {
	if opts.Location == "" {
		return nil, fmt.Errorf("no service description location")
	}
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}

	// Priority: URL > RepoDir > file
	if isURL(opts.Location) {
		return fetchFromURL(ctx, opts)
	}

	if opts.RepoDir != "" {
		return fetchFromRepo(opts.RepoDir, opts.Location)
	}

	return fetchFromFile(opts.Location)
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// fetchFromFile reads the description from a local file.
func fetchFromFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	svc, err := model.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &Result{
		Service: svc,
		Source:  path,
	}, nil
}

// fetchFromRepo reads the description from a repository checkout.
func fetchFromRepo(repoDir, relPath string) (*Result, error) {
	data, err := os.ReadFile(filepath.Join(repoDir, relPath))
	if err != nil {
		return nil, fmt.Errorf("read from repo: %w", err)
	}

	svc, err := model.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", relPath, err)
	}

	hash := getGitHash(repoDir)
	source := relPath
	if hash != "" {
		source = fmt.Sprintf("%s@%s", relPath, hash[:12])
	}

	return &Result{
		Service:    svc,
		CommitHash: hash,
		Source:     source,
	}, nil
}

// fetchFromURL downloads the description over HTTP.
func fetchFromURL(ctx context.Context, opts Options) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.Location, nil)
	if err != nil {
		return nil, err
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", opts.Location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d: %s", opts.Location, resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDescriptionSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.Location, err)
	}
	if len(data) > MaxDescriptionSize {
		return nil, fmt.Errorf("fetch %s: description larger than %d bytes", opts.Location, MaxDescriptionSize)
	}

	svc, err := model.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", opts.Location, err)
	}

	return &Result{
		Service: svc,
		Source:  opts.Location,
	}, nil
}

// getGitHash returns the current commit hash for a repository.
func getGitHash(repoDir string) string {
	// Try reading HEAD directly
	headPath := filepath.Join(repoDir, ".git", "HEAD")
	data, err := os.ReadFile(headPath)
	if err != nil {
		return ""
	}

	content := strings.TrimSpace(string(data))

	// Direct hash (detached HEAD)
	if len(content) == 40 && isHex(content) {
		return content
	}

	// Reference (e.g., "ref: refs/heads/main")
	if ref, ok := strings.CutPrefix(content, "ref: "); ok {
		data, err := os.ReadFile(filepath.Join(repoDir, ".git", filepath.FromSlash(ref)))
		if err != nil {
			return ""
		}
		hash := strings.TrimSpace(string(data))
		if len(hash) >= 40 && isHex(hash[:40]) {
			return hash[:40]
		}
	}

	return ""
}

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
