// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/txtar"

	"github.com/albertocavalcante/apinames/generator"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		src       source
		langs     []string
		messages  []string
		options   map[string]string
		outputDir string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate package metadata for target languages",
		Long: `Generate package metadata for each target language. Every language
writes into its own directory below the output directory.

Without --output, or with --dry-run, the files are printed to stdout as
a txtar archive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.load(cmd.Context(), src)
			if err != nil {
				return err
			}

			if len(langs) == 0 {
				langs = in.cfg.Languages()
			}
			if len(langs) == 0 {
				return fmt.Errorf("no target languages: pass --lang or add language_settings to the config")
			}

			type job struct {
				lang string
				gen  generator.Generator
				cfg  generator.Config
			}
			jobs := make([]job, 0, len(langs))
			for _, lang := range langs {
				gen, err := generator.Lookup(lang)
				if err != nil {
					return err
				}
				settings, ok := in.cfg.Language(lang)
				if !ok {
					return fmt.Errorf("no language_settings for %q in config", lang)
				}
				jobs = append(jobs, job{
					lang: lang,
					gen:  gen,
					cfg: generator.Config{
						PackageName:         settings.PackageName,
						DomainLayerLocation: settings.DomainLayerLocation,
						Resources:           in.index,
						Messages:            in.qualify(messages),
						Source:              in.source,
						Options:             options,
					},
				})
			}

			outputs := make([]*generator.Output, len(jobs))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, j := range jobs {
				g.Go(func() error {
					out, err := j.gen.Generate(ctx, in.svc, j.cfg)
					if err != nil {
						return fmt.Errorf("generate %s: %w", j.lang, err)
					}
					a.logger.Debug("generated", "lang", j.lang, "files", out.Names())
					outputs[i] = out
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			all := generator.NewOutput()
			for i, j := range jobs {
				if err := all.Merge(j.lang, outputs[i]); err != nil {
					return err
				}
			}

			if dryRun || outputDir == "" {
				ar := &txtar.Archive{}
				for _, name := range all.Names() {
					ar.Files = append(ar.Files, txtar.File{Name: name, Data: all.Files[name]})
				}
				_, err := a.stdout.Write(txtar.Format(ar))
				return err
			}

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			if err := all.WriteDir(outputDir); err != nil {
				return err
			}
			for _, name := range all.Names() {
				a.logger.Info("wrote", "path", name, "dir", outputDir)
			}
			return nil
		},
	}

	src.addFlags(cmd)
	cmd.Flags().StringSliceVarP(&langs, "lang", "l", nil, "Target languages (default: every configured language)")
	cmd.Flags().StringSliceVarP(&messages, "messages", "m", nil, "Messages to include in resource name tables (default: all)")
	cmd.Flags().StringToStringVar(&options, "option", nil, "Generator option key=value (e.g. license=MIT)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: stdout)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print to stdout without writing files")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
