/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package source

import "errors"

// Sentinel errors shared across parsers and the resolver.
var (
	// ErrUnknownSource indicates input that matches no recognized source kind.
	ErrUnknownSource = errors.New("unknown token source format")

	// ErrEmptySource indicates an input with nothing to parse.
	ErrEmptySource = errors.New("empty token source")

	// ErrInvalidToken indicates a token value that does not match its type.
	ErrInvalidToken = errors.New("invalid token")

	// ErrCircularReference indicates a reference cycle was detected.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrUnresolvedReference indicates a reference target that does not exist.
	ErrUnresolvedReference = errors.New("unresolved token reference")
)
