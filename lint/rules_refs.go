/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lint

import (
	"fmt"
	"strings"

	"github.com/tokenbridge/tokenbridge/resolver"
	"github.com/tokenbridge/tokenbridge/token"
)

// circularReferenceRule errors on reference cycles. Each cycle yields one
// message naming every token on it; tokens inside a cycle are not also
// reported as broken.
func circularReferenceRule() Rule {
	return Rule{
		ID:              "circular-reference",
		DefaultSeverity: SeverityError,
		Check: func(theme *token.ThemeFile, r *Reporter) {
			graph := resolver.BuildGraph(theme)
			for _, cycle := range graph.FindCycles() {
				r.Report("", cycle[0],
					fmt.Sprintf("circular reference: %s", strings.Join(cycle, " -> ")),
					"break the cycle by giving one token a concrete value")
			}
		},
	}
}

// brokenReferenceRule errors on references whose target path does not exist
// anywhere in the theme.
func brokenReferenceRule() Rule {
	return Rule{
		ID:              "broken-reference",
		DefaultSeverity: SeverityError,
		Check: func(theme *token.ThemeFile, r *Reporter) {
			for _, broken := range resolver.BrokenRefs(theme) {
				r.Report(broken.Collection, broken.Path,
					fmt.Sprintf("reference to unknown token %q", broken.Target),
					"check the target path for typos or removed tokens")
			}
		},
	}
}
