// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/apinames/generator"
	"github.com/albertocavalcante/apinames/pkgid"
	"github.com/albertocavalcante/apinames/resource"
)

const testDescription = `
package: google.example.library.v1
resources:
  - type: library.googleapis.com/Shelf
  - type: library.googleapis.com/Book
messages:
  - name: Book
    fields:
      - name: name
        resource_reference:
          type: library.googleapis.com/Book
  - name: ListBooksRequest
    fields:
      - name: parent
        resource_reference:
          type: library.googleapis.com/Shelf
  - name: Shelf
    fields:
      - name: name
`

const testConfig = `
language_settings:
  php:
    package_name: Google\Cloud\Library\V1
  ruby:
    package_name: Google::Cloud::Library::V1
resource_name_generation:
  - message_name: Shelf
    field_entity_map:
      name: shelf
`

// execute runs the command line in-process and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

// writeInputs writes the test description and config into a temp dir.
func writeInputs(t *testing.T) (description, config string) {
	t.Helper()
	dir := t.TempDir()
	description = filepath.Join(dir, "library.yaml")
	config = filepath.Join(dir, "apinames.yaml")
	if err := os.WriteFile(description, []byte(testDescription), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(config, []byte(testConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	return description, config
}

func TestPkgid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default", args: []string{"pkgid", "Acme::Library::V2"}, want: "acme/library\n"},
		{name: "php", args: []string{"pkgid", "--style", "php", `Google\Cloud\Storage\V1`}, want: "google/cloudstorage\n"},
		{name: "ruby", args: []string{"pkgid", "-s", "ruby", "Google::Cloud::PubSub::V1"}, want: "google-cloud-pub-sub\n"},
		{name: "override", args: []string{"pkgid", "--override", "custom-domain", "Acme::Library::V2"}, want: "custom-domain/acmelibrary\n"},
		{name: "several", args: []string{"pkgid", "foo", "Acme::Vault"}, want: "foo/foo\nacme/vault\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute(%v) error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("execute(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestPkgidJSON(t *testing.T) {
	out, err := execute(t, "pkgid", "--format", "json", "Acme::Library::V2")
	if err != nil {
		t.Fatal(err)
	}
	var got []pkgidResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	want := []pkgidResult{{
		Raw:          "Acme::Library::V2",
		Identifier:   "acme/library",
		Vendor:       "acme",
		Project:      "library",
		Version:      "V2",
		MetadataName: "AcmeLibrary",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pkgid --format json mismatch (-want +got):\n%s", diff)
	}
}

func TestPkgidErrors(t *testing.T) {
	if _, err := execute(t, "pkgid", "V2"); !errors.Is(err, pkgid.ErrInvalidPackageName) {
		t.Errorf("pkgid V2 error = %v, want ErrInvalidPackageName", err)
	}
	if _, err := execute(t, "pkgid", "--style", "cobol", "Acme"); err == nil {
		t.Error("pkgid --style cobol: expected error")
	}
	if _, err := execute(t, "pkgid"); err == nil {
		t.Error("pkgid without arguments: expected error")
	}
	if _, err := execute(t, "pkgid", "--format", "xml", "Acme"); err == nil {
		t.Error("pkgid --format xml: expected error")
	}
}

func TestResolve(t *testing.T) {
	description, config := writeInputs(t)

	out, err := execute(t, "resolve", "-d", description, "-c", config, "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var got []generator.ResourceName
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	want := []generator.ResourceName{
		{Message: "google.example.library.v1.Book", Field: "name", Entity: "book", TypeName: "BookName"},
		{Message: "google.example.library.v1.ListBooksRequest", Field: "parent", Entity: "shelf", TypeName: "ShelfName"},
		{Message: "google.example.library.v1.Shelf", Field: "name", Entity: "shelf", TypeName: "ShelfName"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolve mismatch (-want +got):\n%s", diff)
	}

	t.Run("table", func(t *testing.T) {
		out, err := execute(t, "resolve", "-d", description, "--messages", "Book")
		if err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 2 {
			t.Fatalf("got %d lines, want header and one row:\n%s", len(lines), out)
		}
		if fields := strings.Fields(lines[0]); !cmp.Equal(fields, []string{"MESSAGE", "FIELD", "ENTITY", "TYPE"}) {
			t.Errorf("header = %q", lines[0])
		}
		if fields := strings.Fields(lines[1]); !cmp.Equal(fields, []string{"google.example.library.v1.Book", "name", "book", "BookName"}) {
			t.Errorf("row = %q", lines[1])
		}
	})

	t.Run("empty json", func(t *testing.T) {
		out, err := execute(t, "resolve", "-d", description, "-m", "Shelf", "--format", "json")
		if err != nil {
			t.Fatal(err)
		}
		if strings.TrimSpace(out) != "[]" {
			t.Errorf("output = %q, want []", out)
		}
	})
}

func TestResolveUnknownReference(t *testing.T) {
	dir := t.TempDir()
	description := filepath.Join(dir, "bad.yaml")
	data := `
package: acme.v1
messages:
  - name: Book
    fields:
      - name: name
        resource_reference:
          type: acme.com/Missing
`
	if err := os.WriteFile(description, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "resolve", "-d", description)
	if !errors.Is(err, resource.ErrUnknownResourceReference) {
		t.Errorf("resolve error = %v, want ErrUnknownResourceReference", err)
	}
}

func TestGenerate(t *testing.T) {
	description, config := writeInputs(t)
	outDir := filepath.Join(t.TempDir(), "out")

	if _, err := execute(t, "generate", "-d", description, "-c", config, "-o", outDir); err != nil {
		t.Fatalf("generate error = %v", err)
	}

	for _, name := range []string{
		"php/composer.json",
		"ruby/google-cloud-library.gemspec",
		"ruby/resource_names.json",
	} {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(name))); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}

	composer, err := os.ReadFile(filepath.Join(outDir, "php", "composer.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(composer, []byte(`"name": "google/cloudlibrary"`)) {
		t.Errorf("composer.json missing package identifier:\n%s", composer)
	}
}

func TestGenerateDryRun(t *testing.T) {
	description, config := writeInputs(t)

	out, err := execute(t, "generate", "-d", description, "-c", config, "-l", "ruby", "--dry-run", "-o", t.TempDir())
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	ar := txtar.Parse([]byte(out))
	var names []string
	for _, f := range ar.Files {
		names = append(names, f.Name)
	}
	want := []string{"ruby/google-cloud-library.gemspec", "ruby/resource_names.json"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("dry-run files mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(ar.Files[0].Data), "from "+description) {
		t.Errorf("gemspec header does not name the source:\n%s", ar.Files[0].Data)
	}
}

func TestGenerateErrors(t *testing.T) {
	description, config := writeInputs(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown language", args: []string{"-l", "cobol"}, wantErr: "unknown generator"},
		{name: "language without settings", args: []string{"-l", "php", "-l", "ruby", "-c", writeConfig(t, "language_settings:\n  php:\n    package_name: Acme\\Library\n")}, wantErr: `no language_settings for "ruby"`},
		{name: "invalid package name", args: []string{"-l", "php", "-c", writeConfig(t, "language_settings:\n  php:\n    package_name: V1\n")}, wantErr: "generate php"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"generate", "-d", description, "-c", config}, tt.args...)
			_, err := execute(t, args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("generate error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "apinames dev") {
		t.Errorf("version output = %q", out)
	}
	if !strings.Contains(out, "generators: php, ruby") {
		t.Errorf("version output missing generators: %q", out)
	}
}

func TestGenerateFromRepo(t *testing.T) {
	repo := t.TempDir()
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	hash := "0123456789abcdef0123456789abcdef01234567"
	if err := os.WriteFile(filepath.Join(repo, ".git", "HEAD"), []byte(hash+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(repo, "library.yaml"), []byte(testDescription), 0o644); err != nil {
		t.Fatal(err)
	}
	_, config := writeInputs(t)

	out, err := execute(t, "generate", "--repo", repo, "-d", "library.yaml", "-c", config, "-l", "ruby")
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}
	if !strings.Contains(out, "# Generated by apinames from library.yaml@0123456789ab. DO NOT EDIT.") {
		t.Errorf("gemspec header does not name the commit:\n%s", out)
	}
}
