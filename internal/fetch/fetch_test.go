// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const description = `package: acme.library.v1
resources:
  - type: library.acme.com/Book
messages:
  - name: Book
    fields:
      - name: name
        resource_reference:
          type: library.acme.com/Book
`

func TestIsHex(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "", want: true},
		{input: "0123456789abcdef", want: true},
		{input: "0123456789ABCDEF", want: true},
		{input: "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2", want: true},
		{input: "abcdefg", want: false},
		{input: "abc def", want: false},
		{input: "gabc123", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := isHex(tt.input); got != tt.want {
				t.Errorf("isHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// writeGit creates a fake .git directory with HEAD and the given refs.
func writeGit(t *testing.T, dir, head string, refs map[string]string) {
	t.Helper()
	gitDir := filepath.Join(dir, ".git")
	if err := os.MkdirAll(gitDir, 0o755); err != nil {
		t.Fatalf("create .git dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte(head+"\n"), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}
	for ref, hash := range refs {
		path := filepath.Join(gitDir, filepath.FromSlash(ref))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create refs dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(hash+"\n"), 0o644); err != nil {
			t.Fatalf("write ref: %v", err)
		}
	}
}

func TestGetGitHash(t *testing.T) {
	const hash = "b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3"

	tests := []struct {
		name     string
		head     string
		refs     map[string]string
		noGit    bool
		wantHash string
	}{
		{name: "detached HEAD", head: hash, wantHash: hash},
		{name: "branch ref", head: "ref: refs/heads/main", refs: map[string]string{"refs/heads/main": hash}, wantHash: hash},
		{name: "missing branch", head: "ref: refs/heads/nonexistent"},
		{name: "no .git directory", noGit: true},
		{name: "invalid HEAD", head: "invalid content"},
		{name: "non-hex HEAD", head: "ghijklmnopghijklmnopghijklmnopghijklmnop"},
		{name: "ref with extra content", head: "ref: refs/heads/main", refs: map[string]string{"refs/heads/main": hash + " extra"}, wantHash: hash},
		{name: "short ref", head: "ref: refs/heads/main", refs: map[string]string{"refs/heads/main": "abc123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if !tt.noGit {
				writeGit(t, dir, tt.head, tt.refs)
			}
			if got := getGitHash(dir); got != tt.wantHash {
				t.Errorf("getGitHash() = %q, want %q", got, tt.wantHash)
			}
		})
	}
}

func TestFetchFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "library.yaml")
	if err := os.WriteFile(path, []byte(description), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := Fetch(context.Background(), Options{Location: path})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if result.Service.Package != "acme.library.v1" {
		t.Errorf("package = %q, want %q", result.Service.Package, "acme.library.v1")
	}
	if result.Source != path {
		t.Errorf("source = %q, want %q", result.Source, path)
	}
	if result.CommitHash != "" {
		t.Errorf("expected empty CommitHash for file source, got %q", result.CommitHash)
	}

	t.Run("missing", func(t *testing.T) {
		if _, err := Fetch(context.Background(), Options{Location: filepath.Join(dir, "absent.yaml")}); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(bad, []byte("package: [\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Fetch(context.Background(), Options{Location: bad})
		if err == nil || !strings.Contains(err.Error(), "parse "+bad) {
			t.Errorf("Fetch() error = %v, want parse error naming the file", err)
		}
	})

	t.Run("no location", func(t *testing.T) {
		if _, err := Fetch(context.Background(), Options{}); err == nil {
			t.Error("expected error without location")
		}
	})
}

func TestFetchFromRepo(t *testing.T) {
	const hash = "d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5"

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "apis"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "apis", "library.yaml"), []byte(description), 0o644); err != nil {
		t.Fatal(err)
	}
	writeGit(t, dir, hash, nil)

	result, err := Fetch(context.Background(), Options{Location: "apis/library.yaml", RepoDir: dir})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if result.CommitHash != hash {
		t.Errorf("commitHash = %q, want %q", result.CommitHash, hash)
	}
	if want := "apis/library.yaml@d4e5f6a1b2c3"; result.Source != want {
		t.Errorf("source = %q, want %q", result.Source, want)
	}
	if len(result.Service.Messages) != 1 {
		t.Errorf("got %d messages, want 1", len(result.Service.Messages))
	}

	t.Run("without git", func(t *testing.T) {
		if err := os.RemoveAll(filepath.Join(dir, ".git")); err != nil {
			t.Fatal(err)
		}
		result, err := Fetch(context.Background(), Options{Location: "apis/library.yaml", RepoDir: dir})
		if err != nil {
			t.Fatal(err)
		}
		if result.Source != "apis/library.yaml" {
			t.Errorf("source = %q, want %q", result.Source, "apis/library.yaml")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Fetch(context.Background(), Options{Location: "absent.yaml", RepoDir: dir}); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestFetchFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/library.yaml":
			_, _ = w.Write([]byte(description))
		case "/slow.yaml":
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("ok", func(t *testing.T) {
		url := srv.URL + "/library.yaml"
		result, err := Fetch(context.Background(), Options{Location: url, Client: srv.Client()})
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if result.Source != url {
			t.Errorf("source = %q, want %q", result.Source, url)
		}
		if result.Service.Package != "acme.library.v1" {
			t.Errorf("package = %q", result.Service.Package)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := Fetch(context.Background(), Options{Location: srv.URL + "/absent.yaml", Client: srv.Client()})
		if err == nil || !strings.Contains(err.Error(), "HTTP 404") {
			t.Errorf("Fetch() error = %v, want HTTP 404", err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		_, err := Fetch(context.Background(), Options{
			Location: srv.URL + "/slow.yaml",
			Client:   srv.Client(),
			Timeout:  50 * time.Millisecond,
		})
		if err == nil {
			t.Error("expected timeout error")
		}
	})
}
