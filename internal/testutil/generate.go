// SPDX-License-Identifier: MIT

package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/albertocavalcante/apinames/generator"
	"github.com/albertocavalcante/apinames/internal/config"
	"github.com/albertocavalcante/apinames/model"
	"github.com/albertocavalcante/apinames/resource"
)

// GenerateWith returns a GenerateFunc that runs g over a case.
//
// The case's config.yaml supplies the language settings for g and the
// explicit resource name records. A "messages=A;B" flag restricts the
// resource name table, and a "source=path" flag sets Config.Source.
func GenerateWith(g generator.Generator) GenerateFunc {
	return func(c *Case) (map[string][]byte, error) {
		svc, err := model.Parse(c.Input)
		if err != nil {
			return nil, err
		}

		cfg := &config.Config{}
		if c.Config != nil {
			cfg, err = config.Parse(c.Config, "yaml")
			if err != nil {
				return nil, err
			}
		}
		lang := g.Metadata().Name
		settings, ok := cfg.Language(lang)
		if !ok {
			return nil, fmt.Errorf("%s: no language_settings for %q", ConfigFile, lang)
		}

		reg, err := resource.RegistryFromService(svc)
		if err != nil {
			return nil, err
		}
		ctx := context.Background()
		idx, err := resource.BuildIndex(ctx, svc, cfg.ResourceNameGeneration, svc.Package, reg)
		if err != nil {
			return nil, err
		}

		var messages []string
		if m := c.Flag("messages"); m != "" {
			messages = strings.Split(m, ";")
		}

		out, err := g.Generate(ctx, svc, generator.Config{
			PackageName:         settings.PackageName,
			DomainLayerLocation: settings.DomainLayerLocation,
			Resources:           idx,
			Messages:            messages,
			Source:              c.Flag("source"),
		})
		if err != nil {
			return nil, err
		}

		got := make(map[string][]byte, len(out.Files))
		for name, content := range out.Files {
			got[name] = StripHeader(content)
		}
		return got, nil
	}
}
