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

package iontok

import "fmt"

// IOError wraps a failure from the underlying io.Reader.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("iontok: i/o error: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// UnexpectedCharError is returned when Next's default case, or an internal
// expect check, encounters a byte that cannot start or continue any valid
// token.
type UnexpectedCharError struct {
	Char rune
	Pos  uint64
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("iontok: unexpected character %q (offset %v)", e.Char, e.Pos)
}

// EarlyEOFError is returned when a peek, a CRLF normalization, or a
// payload-skip helper needs more input than the source has left to give.
type EarlyEOFError struct {
	Pos uint64
}

func (e *EarlyEOFError) Error() string {
	return fmt.Sprintf("iontok: unexpected end of input (offset %v)", e.Pos)
}

// UnreadAtStartError is returned when Unread is called with no bytes yet
// having been read from the source (position zero).
type UnreadAtStartError struct{}

func (e *UnreadAtStartError) Error() string {
	return "iontok: cannot unread before the start of input"
}

// CommentInLobError is returned when skipLobWhitespace encounters a '/'
// inside a {{ ... }} blob or clob, where comments are not syntactically
// permitted.
type CommentInLobError struct {
	Pos uint64
}

func (e *CommentInLobError) Error() string {
	return fmt.Sprintf("iontok: comments are not allowed inside a lob value (offset %v)", e.Pos)
}

// UnterminatedCommentError is returned when a block comment reaches EOF
// without a closing "*/".
type UnterminatedCommentError struct {
	Pos uint64
}

func (e *UnterminatedCommentError) Error() string {
	return fmt.Sprintf("iontok: unterminated block comment (offset %v)", e.Pos)
}

// NegativeTimestampError is returned when a '-' is immediately followed by
// a digit run shaped like a timestamp; Ion has no such thing as a negative
// timestamp.
type NegativeTimestampError struct {
	Pos uint64
}

func (e *NegativeTimestampError) Error() string {
	return fmt.Sprintf("iontok: timestamps cannot be negative (offset %v)", e.Pos)
}
