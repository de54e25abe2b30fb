// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/apinames/generator"
	"github.com/albertocavalcante/apinames/internal/config"
	"github.com/albertocavalcante/apinames/internal/fetch"
	"github.com/albertocavalcante/apinames/model"
	"github.com/albertocavalcante/apinames/resource"
)

// app carries the state shared by all subcommands.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
	logger  *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "apinames",
		Short: "Derive package identifiers and resource names for client libraries",
		Long: `apinames resolves resource reference annotations into per-message
resource name tables and derives vendor/project package identifiers from
versioned package names.

Examples:
  apinames pkgid --style php 'Google\Cloud\Storage\V1'
  apinames resolve --description library.yaml
  apinames generate --description library.yaml --config apinames.yaml -o out/`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Verbose output")

	root.AddCommand(
		newPkgidCmd(a),
		newResolveCmd(a),
		newGenerateCmd(a),
		newVersionCmd(a),
	)
	return root
}

// source locates the service description of a run.
type source struct {
	description string
	repoDir     string
	config      string
}

func (s *source) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.description, "description", "d", "", "Service description file or URL (YAML or JSON)")
	cmd.Flags().StringVar(&s.repoDir, "repo", "", "Repository checkout the description path is relative to")
	cmd.Flags().StringVarP(&s.config, "config", "c", "", "Config file (YAML, JSON or TOML)")
	_ = cmd.MarkFlagRequired("description")
}

// input is a loaded service description with its resolved resource names.
type input struct {
	svc    *model.Service
	cfg    *config.Config
	index  *resource.Index
	source string
}

// load fetches the service description, reads the optional configuration
// file and resolves the resource names of every message.
func (a *app) load(ctx context.Context, src source) (*input, error) {
	if src.description == "" {
		return nil, fmt.Errorf("--description is required")
	}
	res, err := fetch.Fetch(ctx, fetch.Options{Location: src.description, RepoDir: src.repoDir})
	if err != nil {
		return nil, err
	}
	svc := res.Service
	a.logger.Debug("loaded service description",
		"source", res.Source,
		"commit", res.CommitHash,
		"package", svc.Package,
		"messages", len(svc.Messages),
		"resources", len(svc.Resources))

	cfg := &config.Config{}
	if src.config != "" {
		cfg, err = config.Load(src.config)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("loaded config",
			"path", src.config,
			"languages", cfg.Languages(),
			"records", len(cfg.ResourceNameGeneration))
	}

	reg, err := resource.RegistryFromService(svc)
	if err != nil {
		return nil, fmt.Errorf("build resource registry: %w", err)
	}
	idx, err := resource.BuildIndex(ctx, svc, cfg.ResourceNameGeneration, svc.Package, reg)
	if err != nil {
		return nil, fmt.Errorf("resolve resource names: %w", err)
	}
	a.logger.Debug("resolved resource names", "messages", idx.Len())

	return &input{svc: svc, cfg: cfg, index: idx, source: res.Source}, nil
}

// rows returns the resource name table of in, filtered to messages.
func (in *input) rows(messages []string) ([]generator.ResourceName, error) {
	return generator.ResourceNames(in.index, in.qualify(messages))
}

func (in *input) qualify(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, len(messages))
	for i, m := range messages {
		out[i] = model.Qualify(in.svc.Package, m)
	}
	return out
}
