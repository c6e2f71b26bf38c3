/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package normalize provides the normalize command for tokenbridge.
package normalize

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tokenbridge/tokenbridge/config"
	"github.com/tokenbridge/tokenbridge/fs"
	"github.com/tokenbridge/tokenbridge/parser"
	"github.com/tokenbridge/tokenbridge/parser/compact"
	"github.com/tokenbridge/tokenbridge/parser/css"
	"github.com/tokenbridge/tokenbridge/parser/figma"
	"github.com/tokenbridge/tokenbridge/source"
	"github.com/tokenbridge/tokenbridge/themejson"
	"github.com/tokenbridge/tokenbridge/token"
)

// Cmd is the normalize cobra command.
var Cmd = &cobra.Command{
	Use:   "normalize [files...]",
	Short: "Normalize token sources into the canonical theme document",
	Long: `Normalize design token sources into one canonical theme document.

Sources may be Figma variable exports, compact slash-keyed maps, or CSS
custom property files; the format of each file is detected automatically
unless forced with --kind or per-source config.

Examples:
  # Normalize a Figma export to canonical JSON on stdout
  tokenbridge normalize variables.json

  # Combine several sources into one YAML document
  tokenbridge normalize -f yaml -o theme.yaml tokens.css compact.json

  # Use sources from tokenbridge.yaml
  tokenbridge normalize`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringP("format", "f", "", "Output format: json, yaml")
	Cmd.Flags().StringP("name", "n", "", "Theme name (default: first source file name)")
	Cmd.Flags().StringP("kind", "k", "", "Force source kind: figma, compact, css")
	Cmd.Flags().StringP("collection", "c", "", "Collection name for sources that carry none")

	viper.BindPFlag("format", Cmd.Flags().Lookup("format"))
	viper.BindPFlag("name", Cmd.Flags().Lookup("name"))
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	kindFlag, _ := cmd.Flags().GetString("kind")
	collection, _ := cmd.Flags().GetString("collection")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	specs, err := sourceSpecs(filesystem, cfg, args, kindFlag, collection)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return fmt.Errorf("no sources specified and none found in config")
	}

	name := viper.GetString("name")
	if name == "" {
		name = cfg.Name
	}
	if name == "" {
		base := filepath.Base(specs[0].Path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	theme, err := loadTheme(filesystem, specs, name)
	if err != nil {
		return err
	}

	format := viper.GetString("format")
	if format == "" {
		format = cfg.Format
	}

	var out []byte
	switch format {
	case "", "json":
		out, err = themejson.Encode(theme)
	case "yaml", "yml":
		out, err = themejson.EncodeYAML(theme)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("error encoding theme: %w", err)
	}

	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}

	if output != "" {
		return filesystem.WriteFile(output, out, 0644)
	}
	fmt.Print(string(out))
	return nil
}

// sourceSpecs resolves the sources to load: explicit args win over config.
func sourceSpecs(filesystem fs.FileSystem, cfg *config.Config, args []string, kind, collection string) ([]config.SourceSpec, error) {
	if len(args) > 0 {
		specs := make([]config.SourceSpec, 0, len(args))
		for _, path := range args {
			specs = append(specs, config.SourceSpec{Path: path, Kind: kind, Collection: collection})
		}
		return specs, nil
	}
	specs, err := cfg.ExpandSources(filesystem, ".")
	if err != nil {
		return nil, fmt.Errorf("error expanding config sources: %w", err)
	}
	return specs, nil
}

// loadTheme parses every source and merges the resulting collections into one
// theme document, in source order.
func loadTheme(filesystem fs.FileSystem, specs []config.SourceSpec, name string) (*token.ThemeFile, error) {
	theme := &token.ThemeFile{Name: name}
	for _, spec := range specs {
		data, err := filesystem.ReadFile(spec.Path)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", spec.Path, err)
		}

		kind := spec.SourceKind()
		if kind == source.Unknown {
			kind, err = source.DetectKind(data)
			if err != nil {
				return nil, fmt.Errorf("error detecting format of %s: %w", spec.Path, err)
			}
		}

		p, err := parserFor(kind)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec.Path, err)
		}
		if err := p.Validate(data); err != nil {
			return nil, fmt.Errorf("error validating %s: %w", spec.Path, err)
		}

		parsed, err := p.Parse(data, parser.Options{Name: name, Collection: spec.Collection})
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", spec.Path, err)
		}
		theme.Collections = append(theme.Collections, parsed.Collections...)
	}
	return theme, nil
}

func parserFor(kind source.Kind) (parser.Parser, error) {
	switch kind {
	case source.FigmaNative:
		return figma.New(), nil
	case source.Compact:
		return compact.New(), nil
	case source.CSS:
		return css.New(), nil
	default:
		return nil, fmt.Errorf("%w: cannot determine source format", source.ErrUnknownSource)
	}
}
