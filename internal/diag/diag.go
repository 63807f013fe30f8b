/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

// Package diag formats tokenizer failures for a human reading a terminal:
// the source name, the byte offset the Tokenizer was at when it failed,
// and the underlying cause, wrapped so errors.Unwrap/errors.As still work.
package diag

import "golang.org/x/xerrors"

// Wrap annotates err with a source name and the byte offset the Tokenizer
// reported at the time of failure, producing a message of the form
// "source: offset 12: err". The caller gets the offset from the
// Tokenizer's own Pos(), since iontok's error types are plain structs with
// no shared accessor -- reaching into them here would couple this package
// to iontok's internals instead of its public surface.
func Wrap(source string, pos uint64, err error) error {
	if err == nil {
		return nil
	}
	return xerrors.Errorf("%s: offset %d: %w", source, pos, err)
}
