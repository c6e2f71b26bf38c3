/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lint

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tokenbridge/tokenbridge/token"
)

// maxNestingDepth is the deepest group nesting accepted without a finding.
const maxNestingDepth = 8

var segmentCharset = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// segmentStyle classifies a path segment's naming style.
type segmentStyle int

const (
	styleNeutral segmentStyle = iota // single lowercase word or digits
	styleKebab
	styleSnake
	styleCamel
)

func (s segmentStyle) String() string {
	switch s {
	case styleKebab:
		return "kebab-case"
	case styleSnake:
		return "snake_case"
	case styleCamel:
		return "camelCase"
	default:
		return "neutral"
	}
}

func classifySegment(segment string) segmentStyle {
	switch {
	case strings.Contains(segment, "-"):
		return styleKebab
	case strings.Contains(segment, "_"):
		return styleSnake
	case strings.ToLower(segment) != segment:
		return styleCamel
	default:
		return styleNeutral
	}
}

// namingConventionRule warns when a collection mixes naming styles. The
// majority style wins; every path using another style is reported with a
// rename suggestion.
func namingConventionRule() Rule {
	caser := cases.Title(language.English)
	return Rule{
		ID:              "naming-convention",
		DefaultSeverity: SeverityWarning,
		Check: func(theme *token.ThemeFile, r *Reporter) {
			for _, c := range theme.Collections {
				root := c.Default()
				if root == nil {
					continue
				}
				counts := make(map[segmentStyle]int)
				bySegment := make(map[string]segmentStyle)
				root.Walk(func(path string, _ *token.Token) {
					for _, segment := range strings.Split(path, ".") {
						if style := classifySegment(segment); style != styleNeutral {
							counts[style]++
							bySegment[path] = style
						}
					}
				})
				if len(counts) < 2 {
					continue
				}
				majority := styleNeutral
				best := -1
				for style, n := range counts {
					if n > best {
						majority, best = style, n
					}
				}
				for _, path := range sortedMapKeys(bySegment) {
					style := bySegment[path]
					if style == majority {
						continue
					}
					r.Report(c.Name, path,
						fmt.Sprintf("%s naming in a mostly %s collection", style, majority),
						fmt.Sprintf("rename to %s", restyle(path, majority, caser)))
				}
			}
		},
	}
}

// restyle rewrites a dot path's segments into the target naming style.
func restyle(path string, style segmentStyle, caser cases.Caser) string {
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		words := splitWords(segment)
		switch style {
		case styleKebab:
			segments[i] = strings.ToLower(strings.Join(words, "-"))
		case styleSnake:
			segments[i] = strings.ToLower(strings.Join(words, "_"))
		case styleCamel:
			for j := 1; j < len(words); j++ {
				words[j] = caser.String(strings.ToLower(words[j]))
			}
			joined := strings.ToLower(words[0]) + strings.Join(words[1:], "")
			segments[i] = joined
		}
	}
	return strings.Join(segments, ".")
}

// splitWords splits a segment on hyphens, underscores and camel boundaries.
func splitWords(segment string) []string {
	var words []string
	var current strings.Builder
	for i, r := range segment {
		switch {
		case r == '-' || r == '_':
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		case r >= 'A' && r <= 'Z' && i > 0:
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	if len(words) == 0 {
		return []string{segment}
	}
	return words
}

// charsetRule rejects path segments containing characters outside the
// portable identifier set.
func charsetRule() Rule {
	return Rule{
		ID:              "charset",
		DefaultSeverity: SeverityError,
		Check: func(theme *token.ThemeFile, r *Reporter) {
			theme.WalkTokens(func(collection, mode, path string, _ *token.Token) {
				if mode != defaultModeOf(theme, collection) {
					return
				}
				for _, segment := range strings.Split(path, ".") {
					if !segmentCharset.MatchString(segment) {
						r.Report(collection, path,
							fmt.Sprintf("segment %q contains invalid characters", segment),
							"use only letters, digits, hyphens and underscores")
						return
					}
				}
			})
		},
	}
}

// nestingDepthRule warns on groups nested deeper than generators handle
// gracefully.
func nestingDepthRule() Rule {
	return Rule{
		ID:              "nesting-depth",
		DefaultSeverity: SeverityWarning,
		Check: func(theme *token.ThemeFile, r *Reporter) {
			for _, c := range theme.Collections {
				root := c.Default()
				if root == nil {
					continue
				}
				if depth := root.Depth(); depth > maxNestingDepth {
					r.Report(c.Name, "",
						fmt.Sprintf("nesting depth %d exceeds %d", depth, maxNestingDepth),
						"flatten intermediate groups")
				}
			}
		},
	}
}

// emptyCollectionRule warns on collections that contain no tokens at all.
func emptyCollectionRule() Rule {
	return Rule{
		ID:              "empty-collection",
		DefaultSeverity: SeverityWarning,
		Check: func(theme *token.ThemeFile, r *Reporter) {
			for _, c := range theme.Collections {
				total := 0
				for _, root := range c.Tokens {
					total += len(root.AllPaths())
				}
				if total == 0 {
					r.Report(c.Name, "", "collection has no tokens", "remove it or add tokens")
				}
			}
		},
	}
}

// missingDescriptionRule reports tokens without documentation.
func missingDescriptionRule() Rule {
	return Rule{
		ID:              "missing-description",
		DefaultSeverity: SeverityInfo,
		Check: func(theme *token.ThemeFile, r *Reporter) {
			theme.WalkTokens(func(collection, mode, path string, t *token.Token) {
				if mode != defaultModeOf(theme, collection) {
					return
				}
				if t.Description == "" {
					r.Report(collection, path, "token has no description", "add a description")
				}
			})
		},
	}
}

// modeConsistencyRule warns when a token path present in one mode of a
// collection is missing from another mode of the same collection.
func modeConsistencyRule() Rule {
	return Rule{
		ID:              "mode-consistency",
		DefaultSeverity: SeverityWarning,
		Check: func(theme *token.ThemeFile, r *Reporter) {
			for _, c := range theme.Collections {
				if len(c.Modes) < 2 {
					continue
				}
				union := make(map[string]bool)
				perMode := make(map[string]map[string]bool)
				for _, mode := range c.Modes {
					perMode[mode] = make(map[string]bool)
					root := c.Tokens[mode]
					if root == nil {
						continue
					}
					for _, path := range root.AllPaths() {
						union[path] = true
						perMode[mode][path] = true
					}
				}
				for _, path := range sortedSetKeys(union) {
					for _, mode := range c.Modes {
						if !perMode[mode][path] {
							r.Report(c.Name, path,
								fmt.Sprintf("token missing from mode %q", mode),
								fmt.Sprintf("define %s in mode %q", path, mode))
						}
					}
				}
			}
		},
	}
}

// defaultModeRule errors when a collection's default mode does not exist.
func defaultModeRule() Rule {
	return Rule{
		ID:              "default-mode",
		DefaultSeverity: SeverityError,
		Check: func(theme *token.ThemeFile, r *Reporter) {
			for _, c := range theme.Collections {
				found := false
				for _, mode := range c.Modes {
					if mode == c.DefaultMode {
						found = true
						break
					}
				}
				if !found {
					r.Report(c.Name, "",
						fmt.Sprintf("default mode %q is not in modes %v", c.DefaultMode, c.Modes),
						"set defaultMode to one of the declared modes")
				} else if c.Tokens[c.DefaultMode] == nil {
					r.Report(c.Name, "",
						fmt.Sprintf("default mode %q has no token tree", c.DefaultMode),
						"populate the default mode")
				}
			}
		},
	}
}

func defaultModeOf(theme *token.ThemeFile, collection string) string {
	if c, ok := theme.Collection(collection); ok {
		return c.DefaultMode
	}
	return ""
}

func sortedSetKeys(set map[string]bool) []string {
	return sortedMapKeys(set)
}

func sortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
