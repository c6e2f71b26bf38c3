/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css extracts design tokens from CSS custom property declarations.
// It is not a CSS parser: only `--name: value;` declarations inside five
// recognized structural contexts are consumed, everything else is ignored.
package css

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tokenbridge/tokenbridge/builder"
	"github.com/tokenbridge/tokenbridge/fs"
	"github.com/tokenbridge/tokenbridge/internal/logger"
	"github.com/tokenbridge/tokenbridge/parser"
	"github.com/tokenbridge/tokenbridge/registry"
	"github.com/tokenbridge/tokenbridge/source"
	"github.com/tokenbridge/tokenbridge/token"
)

// DefaultMode is the mode light-context variables merge into.
const DefaultMode = "default"

// DarkMode is the mode dark-context variables merge into. It exists only
// when at least one dark-context variable does.
const DarkMode = "dark"

// Parser extracts custom properties from raw CSS text.
type Parser struct{}

// New creates a CSS custom-property parser.
func New() *Parser {
	return &Parser{}
}

var (
	// declPattern matches one custom property declaration.
	declPattern = regexp.MustCompile(`--([A-Za-z0-9_-]+)\s*:\s*([^;]+);`)

	// Context headers. The block body is found by bracket matching from
	// the header's opening brace, so nested braces inside @media work.
	themePattern     = regexp.MustCompile(`@theme\s*\{`)
	rootPattern      = regexp.MustCompile(`:root\s*\{`)
	darkClassPattern = regexp.MustCompile(`\.dark\s*\{`)
	darkAttrPattern  = regexp.MustCompile(`\[data-theme="dark"\]\s*\{`)
	darkMediaPattern = regexp.MustCompile(`@media\s*\(\s*prefers-color-scheme:\s*dark\s*\)\s*\{`)
)

// multiWordPrefixes are Tailwind-style variable prefixes that collapse into
// a single camelCase path segment before generic hyphen splitting, so that
// --font-family-sans becomes fontFamily/sans rather than font/family/sans.
var multiWordPrefixes = []string{
	"font-family", "font-size", "font-weight", "line-height", "letter-spacing",
}

// Validate rejects empty input. Unrecognized text is not an error: a
// stylesheet with no custom properties simply yields an empty theme.
func (p *Parser) Validate(data []byte) error {
	if strings.TrimSpace(string(data)) == "" {
		return source.ErrEmptySource
	}
	return nil
}

// Parse extracts custom properties into a single-collection ThemeFile.
// Light contexts (@theme, :root) merge into the default mode; dark contexts
// (.dark, [data-theme="dark"], the dark media query's :root) merge into the
// dark mode, which is created only if a dark variable exists.
func (p *Parser) Parse(data []byte, opts parser.Options) (*token.ThemeFile, error) {
	if err := p.Validate(data); err != nil {
		return nil, err
	}
	reg := opts.Reg()
	collection := opts.CollectionOr("theme")

	src := string(data)

	// Dark media blocks are carved out first so their :root bodies are not
	// also claimed by the light :root context.
	var darkBodies []string
	src, mediaBodies := extractBlocks(src, darkMediaPattern)
	for _, media := range mediaBodies {
		_, roots := extractBlocks(media, rootPattern)
		darkBodies = append(darkBodies, roots...)
	}

	var lightBodies []string
	src, bodies := extractBlocks(src, themePattern)
	lightBodies = append(lightBodies, bodies...)
	src, bodies = extractBlocks(src, rootPattern)
	lightBodies = append(lightBodies, bodies...)
	src, bodies = extractBlocks(src, darkClassPattern)
	darkBodies = append(darkBodies, bodies...)
	_, bodies = extractBlocks(src, darkAttrPattern)
	darkBodies = append(darkBodies, bodies...)

	var entries []builder.Entry
	for _, body := range lightBodies {
		entries = append(entries, p.declarations(reg, collection, DefaultMode, body)...)
	}
	darkEntries := 0
	for _, body := range darkBodies {
		found := p.declarations(reg, collection, DarkMode, body)
		darkEntries += len(found)
		entries = append(entries, found...)
	}

	theme := builder.Build(opts.Name, entries)
	if c, ok := theme.Collection(collection); ok {
		c.DefaultMode = DefaultMode
		if darkEntries == 0 {
			delete(c.Tokens, DarkMode)
		}
	}
	return theme, nil
}

// ParseFile reads and parses a CSS file.
func (p *Parser) ParseFile(filesystem fs.FileSystem, path string, opts parser.Options) (*token.ThemeFile, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	theme, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return theme, nil
}

// declarations extracts and classifies every custom property in a block body.
func (p *Parser) declarations(reg *registry.Registry, collection, mode, body string) []builder.Entry {
	var entries []builder.Entry
	for _, m := range declPattern.FindAllStringSubmatch(body, -1) {
		name, raw := m[1], strings.TrimSpace(m[2])
		path := NamePath(name)
		t, err := reg.ParseString(raw, path)
		if err != nil {
			logger.Warn("skipping --%s: %v", name, err)
			continue
		}
		entries = append(entries, builder.Entry{
			Collection: collection,
			Mode:       mode,
			Path:       path,
			Token:      t,
		})
	}
	return entries
}

// NamePath converts a custom property name into path segments. Multi-word
// prefixes collapse into one camel segment, the rest splits on hyphens.
func NamePath(name string) []string {
	for _, prefix := range multiWordPrefixes {
		if name == prefix {
			return []string{camel(prefix)}
		}
		if strings.HasPrefix(name, prefix+"-") {
			rest := strings.TrimPrefix(name, prefix+"-")
			return append([]string{camel(prefix)}, strings.Split(rest, "-")...)
		}
	}
	return strings.Split(name, "-")
}

// camel converts a hyphenated prefix into camelCase.
func camel(s string) string {
	parts := strings.Split(s, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// extractBlocks finds every block opened by a header match, returns the
// source with those blocks removed alongside the block bodies. Bodies are
// delimited by brace matching from the header's opening brace.
func extractBlocks(src string, header *regexp.Regexp) (remaining string, bodies []string) {
	for {
		loc := header.FindStringIndex(src)
		if loc == nil {
			return src, bodies
		}
		open := loc[1] - 1 // header patterns end at the opening brace
		end, ok := matchBrace(src, open)
		if !ok {
			// Unbalanced braces: drop the rest of the input.
			return src[:loc[0]], bodies
		}
		bodies = append(bodies, src[open+1:end])
		src = src[:loc[0]] + src[end+1:]
	}
}

// matchBrace returns the index of the brace closing the one at open.
func matchBrace(src string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
