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

// matcher is a single-byte predicate, used to parameterize the radix-digit
// and timestamp-digit skip/read loops in skipper.go.
type matcher func(int) bool

// isWhitespace reports whether c is Ion whitespace. CR never appears here;
// readInput normalizes CRLF (and bare CR) to LF before this is consulted.
func isWhitespace(c int) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f':
		return true
	}
	return false
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

// isHexDigit reports whether c is a valid hex digit.
func isHexDigit(c int) bool {
	if isDigit(c) {
		return true
	}
	if c >= 'a' && c <= 'f' {
		return true
	}
	if c >= 'A' && c <= 'F' {
		return true
	}
	return false
}

// isIdentifierStart reports whether c may begin an unquoted identifier.
func isIdentifierStart(c int) bool {
	if c >= 'a' && c <= 'z' {
		return true
	}
	if c >= 'A' && c <= 'Z' {
		return true
	}
	return c == '_' || c == '$'
}

// isIdentifierPart reports whether c may appear after the first character
// of an unquoted identifier.
func isIdentifierPart(c int) bool {
	return isIdentifierStart(c) || isDigit(c)
}

// isOperatorChar reports whether c is one of the characters that make up
// an operator symbol (a run of these is a single SymbolOperator token).
func isOperatorChar(c int) bool {
	switch c {
	case '!', '#', '%', '&', '*', '+', '-', '.', '/', ';', '<', '=',
		'>', '?', '@', '^', '`', '|', '~':
		return true
	default:
		return false
	}
}

// isStopChar reports whether c unconditionally terminates an adjacent
// unquoted token. It does not check for '/' beginning a comment, since
// that needs a second byte of lookahead -- see (*Tokenizer).IsStopChar.
func isStopChar(c int) bool {
	switch c {
	case -1, '{', '}', '[', ']', '(', ')', ',', '"', '\'',
		' ', '\t', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

// isProhibitedControlChar reports whether c is a non-displayable ASCII
// control character forbidden inside string and symbol payloads -- every
// value below 0x20 except the whitespace characters Ion explicitly allows.
func isProhibitedControlChar(c int) bool {
	if c < 0x00 || c > 0x1F {
		return false
	}
	switch c {
	case 0x09, 0x0A, 0x0B, 0x0C, 0x0D:
		return false
	}
	return true
}

// isASCII reports whether c is a 7-bit ASCII byte.
func isASCII(c int) bool {
	return c >= 0 && c < 0x80
}
