/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lint validates canonical token trees with independent, isolated
// rules. Parsing is deliberately permissive; every structural and semantic
// invariant — bad ranges, broken references, cycles, mode gaps — is found
// here, in a separate optional pass, never during parsing.
package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tokenbridge/tokenbridge/token"
)

// Severity ranks a finding. Severities are data for the caller to act on,
// never control flow: no severity aborts the run.
type Severity int

// Severity levels, in output order.
const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity name as written in configuration.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q", s)
	}
}

// Message is one lint finding.
type Message struct {
	// Rule is the id of the rule that produced the finding.
	Rule string `json:"rule"`

	// Severity ranks the finding.
	Severity Severity `json:"severity"`

	// Collection locates the finding, when it concerns one collection.
	Collection string `json:"collection,omitempty"`

	// Path locates the finding, when it concerns one token.
	Path string `json:"path,omitempty"`

	// Message describes what is wrong.
	Message string `json:"message"`

	// Suggestion provides an actionable fix.
	Suggestion string `json:"suggestion,omitempty"`
}

// String renders the finding for terminal output.
func (m Message) String() string {
	var sb strings.Builder
	sb.WriteString(m.Severity.String())
	sb.WriteString(" [")
	sb.WriteString(m.Rule)
	sb.WriteString("]")
	if m.Collection != "" {
		sb.WriteString(" ")
		sb.WriteString(m.Collection)
	}
	if m.Path != "" {
		if m.Collection != "" {
			sb.WriteString(":")
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString(m.Path)
	}
	sb.WriteString(": ")
	sb.WriteString(m.Message)
	if m.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(m.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Reporter collects findings for one rule, stamping each with the rule's id
// and configured severity.
type Reporter struct {
	rule     string
	severity Severity
	messages *[]Message
}

// Report records a finding. Collection and path may be empty for
// theme-level findings.
func (r *Reporter) Report(collection, path, message, suggestion string) {
	*r.messages = append(*r.messages, Message{
		Rule:       r.rule,
		Severity:   r.severity,
		Collection: collection,
		Path:       path,
		Message:    message,
		Suggestion: suggestion,
	})
}

// Rule is one independent check over a theme. Check must not mutate the
// theme; it reports findings through the reporter.
type Rule struct {
	// ID identifies the rule in findings and configuration.
	ID string

	// DefaultSeverity is used unless configuration overrides it.
	DefaultSeverity Severity

	// Check runs the rule.
	Check func(theme *token.ThemeFile, r *Reporter)
}

// Config enables, disables and re-ranks rules.
type Config struct {
	// Disabled lists rule ids to skip.
	Disabled []string

	// Severities overrides per-rule severity by id.
	Severities map[string]Severity
}

// Run executes every enabled rule and returns findings stable-sorted by
// severity: errors, then warnings, then info, preserving detection order
// within each severity. A rule that panics is converted into a single
// error-severity finding; one faulty rule never aborts the run.
func Run(theme *token.ThemeFile, cfg Config) []Message {
	return RunRules(theme, DefaultRules(), cfg)
}

// RunRules is Run over an explicit rule set.
func RunRules(theme *token.ThemeFile, rules []Rule, cfg Config) []Message {
	disabled := make(map[string]bool, len(cfg.Disabled))
	for _, id := range cfg.Disabled {
		disabled[id] = true
	}

	var messages []Message
	for _, rule := range rules {
		if disabled[rule.ID] {
			continue
		}
		severity := rule.DefaultSeverity
		if override, ok := cfg.Severities[rule.ID]; ok {
			severity = override
		}
		runRule(theme, rule, severity, &messages)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Severity < messages[j].Severity
	})
	return messages
}

// runRule isolates one rule execution, converting a panic into a finding.
func runRule(theme *token.ThemeFile, rule Rule, severity Severity, messages *[]Message) {
	defer func() {
		if r := recover(); r != nil {
			*messages = append(*messages, Message{
				Rule:     rule.ID,
				Severity: SeverityError,
				Message:  fmt.Sprintf("rule failed: %v", r),
			})
		}
	}()
	rule.Check(theme, &Reporter{rule: rule.ID, severity: severity, messages: messages})
}

// DefaultRules returns every built-in rule.
func DefaultRules() []Rule {
	return []Rule{
		namingConventionRule(),
		charsetRule(),
		nestingDepthRule(),
		emptyCollectionRule(),
		missingDescriptionRule(),
		valueRangeRule(),
		enumValidRule(),
		compositeCompleteRule(),
		modeConsistencyRule(),
		defaultModeRule(),
		circularReferenceRule(),
		brokenReferenceRule(),
	}
}
