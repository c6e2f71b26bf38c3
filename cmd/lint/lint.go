/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lint provides the lint command for tokenbridge.
package lint

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokenbridge/tokenbridge/config"
	"github.com/tokenbridge/tokenbridge/fs"
	"github.com/tokenbridge/tokenbridge/lint"
	"github.com/tokenbridge/tokenbridge/parser"
	"github.com/tokenbridge/tokenbridge/parser/compact"
	"github.com/tokenbridge/tokenbridge/parser/css"
	"github.com/tokenbridge/tokenbridge/parser/figma"
	"github.com/tokenbridge/tokenbridge/source"
	"github.com/tokenbridge/tokenbridge/token"
)

// Cmd is the lint cobra command.
var Cmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Lint token sources",
	Long: `Lint token sources for structural and semantic problems: naming
consistency, invalid values, incomplete composites, mode gaps, broken and
circular references.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings as well as errors")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
	Cmd.Flags().StringArray("disable", nil, "Rule ids to skip (repeatable)")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")
	disableFlag, _ := cmd.Flags().GetStringArray("disable")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	specs, err := sourceSpecs(filesystem, cfg, args)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return fmt.Errorf("no sources specified and none found in config")
	}

	lintCfg := cfg.LintOptions()
	lintCfg.Disabled = append(lintCfg.Disabled, disableFlag...)

	hasErrors := false
	hasWarnings := false

	for _, spec := range specs {
		theme, err := loadTheme(filesystem, spec)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			hasErrors = true
			continue
		}

		for _, msg := range lint.Run(theme, lintCfg) {
			switch msg.Severity {
			case lint.SeverityError:
				hasErrors = true
			case lint.SeverityWarning:
				hasWarnings = true
			}
			if quiet && msg.Severity != lint.SeverityError {
				continue
			}
			fmt.Printf("%s: %s\n", spec.Path, msg)
		}
	}

	if hasErrors || (strict && hasWarnings) {
		return fmt.Errorf("lint failed")
	}
	if !quiet {
		fmt.Println("No problems found.")
	}
	return nil
}

func sourceSpecs(filesystem fs.FileSystem, cfg *config.Config, args []string) ([]config.SourceSpec, error) {
	if len(args) > 0 {
		specs := make([]config.SourceSpec, 0, len(args))
		for _, path := range args {
			specs = append(specs, config.SourceSpec{Path: path})
		}
		return specs, nil
	}
	specs, err := cfg.ExpandSources(filesystem, ".")
	if err != nil {
		return nil, fmt.Errorf("error expanding config sources: %w", err)
	}
	return specs, nil
}

func loadTheme(filesystem fs.FileSystem, spec config.SourceSpec) (*token.ThemeFile, error) {
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

	var p parser.Parser
	switch kind {
	case source.FigmaNative:
		p = figma.New()
	case source.Compact:
		p = compact.New()
	case source.CSS:
		p = css.New()
	default:
		return nil, fmt.Errorf("%s: %w", spec.Path, source.ErrUnknownSource)
	}

	if err := p.Validate(data); err != nil {
		return nil, fmt.Errorf("error validating %s: %w", spec.Path, err)
	}
	theme, err := p.Parse(data, parser.Options{Name: spec.Path, Collection: spec.Collection})
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", spec.Path, err)
	}
	return theme, nil
}
