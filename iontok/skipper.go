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

import (
	"fmt"
	"io"
)

// SkipDoubleColon skips leading whitespace and, if present, a following
// "::" token, reporting whether one was found and whether anything was
// skipped to get there. If no "::" is found, the input is left unconsumed
// at the first non-whitespace byte.
func (t *Tokenizer) SkipDoubleColon() (found bool, skippedWS bool, err error) {
	skippedWS, err = t.skipWhitespaceHelper()
	if err != nil {
		return false, false, err
	}

	found, err = t.skipDoubleColon()
	if err != nil {
		return false, false, err
	}
	return found, skippedWS, nil
}

func (t *Tokenizer) skipDoubleColon() (bool, error) {
	cs, err := t.peekN(2)
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if cs[0] == ':' && cs[1] == ':' {
		if err := t.skipN(2); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// SkipDot peeks ahead for a '.' token and consumes it if present, leaving
// the input untouched otherwise.
func (t *Tokenizer) SkipDot() (bool, error) {
	c, err := t.peek()
	if err != nil {
		return false, err
	}
	if c != '.' {
		return false, nil
	}
	if _, err := t.read(); err != nil {
		return false, err
	}
	return true, nil
}

// SkipLobWhitespace skips whitespace inside a {{ ... }} blob or clob, where
// comments are a syntax error rather than something to be skipped over.
func (t *Tokenizer) SkipLobWhitespace() (int, error) {
	c, _, err := t.skipLobWhitespace()
	return c, err
}

func (t *Tokenizer) skipLobWhitespace() (int, bool, error) {
	return t.skipWhitespaceWith(t.ensureNoCommentsHandler)
}

// skipValue discards the payload of the current token kind, returning the
// byte that terminated it.
func (t *Tokenizer) skipValue() (int, error) {
	var c int
	var err error

	switch t.kind {
	case Number:
		c, err = t.skipNumber()
	case Binary:
		c, err = t.skipBinary()
	case Hex:
		c, err = t.skipHex()
	case Timestamp:
		c, err = t.skipTimestamp()
	case Symbol:
		c, err = t.skipSymbol()
	case SymbolQuoted:
		c, err = t.skipSymbolQuoted()
	case SymbolOperator:
		c, err = t.skipSymbolOperator()
	case String:
		c, err = t.skipString()
	case LongString:
		c, err = t.skipLongString()
	case OpenDoubleBrace:
		c, err = t.skipBlob()
	case OpenBrace:
		c, err = t.skipStruct()
	case OpenParen:
		c, err = t.skipSexp()
	case OpenBracket:
		c, err = t.skipList()
	default:
		panic(fmt.Sprintf("skipValue called with kind=%v", t.kind))
	}
	if err != nil {
		return 0, err
	}

	if isWhitespace(c) {
		c, _, err = t.skipWhitespace()
		if err != nil {
			return 0, err
		}
	}

	t.unfinished = false
	return c, nil
}

func (t *Tokenizer) skipNumber() (int, error) {
	c, err := t.read()
	if err != nil {
		return 0, err
	}

	if c == '-' {
		if c, err = t.read(); err != nil {
			return 0, err
		}
	}

	if c, err = t.skipDigits(c); err != nil {
		return 0, err
	}

	if c == '.' {
		if c, err = t.read(); err != nil {
			return 0, err
		}
		if c, err = t.skipDigits(c); err != nil {
			return 0, err
		}
	}

	if c == 'd' || c == 'D' || c == 'e' || c == 'E' {
		if c, err = t.read(); err != nil {
			return 0, err
		}
		if c == '+' || c == '-' {
			if c, err = t.read(); err != nil {
				return 0, err
			}
		}
		if c, err = t.skipDigits(c); err != nil {
			return 0, err
		}
	}

	ok, err := t.IsStopChar(c)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, t.invalidChar(c)
	}
	return c, nil
}

func (t *Tokenizer) skipBinary() (int, error) {
	isB := func(c int) bool { return c == 'b' || c == 'B' }
	isBinaryDigit := func(c int) bool { return c == '0' || c == '1' }
	return t.skipRadix(isB, isBinaryDigit)
}

func (t *Tokenizer) skipHex() (int, error) {
	isX := func(c int) bool { return c == 'x' || c == 'X' }
	return t.skipRadix(isX, isHexDigit)
}

func (t *Tokenizer) skipRadix(isRadixMarker, isValidForRadix matcher) (int, error) {
	c, err := t.read()
	if err != nil {
		return 0, err
	}

	if c == '-' {
		if c, err = t.read(); err != nil {
			return 0, err
		}
	}

	if c != '0' {
		return 0, t.invalidChar(c)
	}
	if err := t.expect(isRadixMarker); err != nil {
		return 0, err
	}

	for {
		if c, err = t.read(); err != nil {
			return 0, err
		}
		if !isValidForRadix(c) {
			break
		}
	}

	ok, err := t.IsStopChar(c)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, t.invalidChar(c)
	}
	return c, nil
}

func (t *Tokenizer) skipTimestamp() (int, error) {
	c, err := t.skipTimestampDigits(4)
	if err != nil {
		return 0, err
	}
	if c == 'T' {
		return t.read()
	}
	if c != '-' {
		return 0, t.invalidChar(c)
	}

	if c, err = t.skipTimestampDigits(2); err != nil {
		return 0, err
	}
	if c == 'T' {
		return t.read()
	}
	if c != '-' {
		return 0, t.invalidChar(c)
	}

	if c, err = t.skipTimestampDigits(2); err != nil {
		return 0, err
	}
	if c != 'T' {
		return t.skipTimestampFinish(c)
	}

	if c, err = t.read(); err != nil {
		return 0, err
	}
	if !isDigit(c) {
		if c, err = t.skipTimestampOffset(c); err != nil {
			return 0, err
		}
		return t.skipTimestampFinish(c)
	}

	if c, err = t.skipTimestampDigits(1); err != nil {
		return 0, err
	}
	if c != ':' {
		return 0, t.invalidChar(c)
	}

	if c, err = t.skipTimestampDigits(2); err != nil {
		return 0, err
	}
	if c != ':' {
		if c, err = t.skipTimestampOffsetOrZ(c); err != nil {
			return 0, err
		}
		return t.skipTimestampFinish(c)
	}

	if c, err = t.skipTimestampDigits(2); err != nil {
		return 0, err
	}
	if c != '.' {
		if c, err = t.skipTimestampOffsetOrZ(c); err != nil {
			return 0, err
		}
		return t.skipTimestampFinish(c)
	}

	if c, err = t.read(); err != nil {
		return 0, err
	}
	if isDigit(c) {
		if c, err = t.skipDigits(c); err != nil {
			return 0, err
		}
	}

	if c, err = t.skipTimestampOffsetOrZ(c); err != nil {
		return 0, err
	}
	return t.skipTimestampFinish(c)
}

func (t *Tokenizer) skipTimestampOffsetOrZ(c int) (int, error) {
	if c == '-' || c == '+' {
		return t.skipTimestampOffset(c)
	}
	if c == 'z' || c == 'Z' {
		return t.read()
	}
	return 0, t.invalidChar(c)
}

func (t *Tokenizer) skipTimestampOffset(c int) (int, error) {
	if c != '-' && c != '+' {
		return c, nil
	}

	c, err := t.skipTimestampDigits(2)
	if err != nil {
		return 0, err
	}
	if c != ':' {
		return 0, t.invalidChar(c)
	}
	return t.skipTimestampDigits(2)
}

func (t *Tokenizer) skipTimestampDigits(n int) (int, error) {
	for n > 0 {
		if err := t.expect(isDigit); err != nil {
			return 0, err
		}
		n--
	}
	return t.read()
}

func (t *Tokenizer) skipTimestampFinish(c int) (int, error) {
	ok, err := t.IsStopChar(c)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, t.invalidChar(c)
	}
	return c, nil
}

func (t *Tokenizer) skipSymbol() (int, error) {
	c, err := t.read()
	if err != nil {
		return 0, err
	}
	for isIdentifierPart(c) {
		if c, err = t.read(); err != nil {
			return 0, err
		}
	}
	return c, nil
}

func (t *Tokenizer) skipSymbolQuoted() (int, error) {
	if err := t.skipSymbolQuotedHelper(); err != nil {
		return 0, err
	}
	return t.read()
}

func (t *Tokenizer) skipSymbolQuotedHelper() error {
	for {
		c, err := t.read()
		if err != nil {
			return err
		}

		switch c {
		case -1, '\n':
			return t.invalidChar(c)
		case '\'':
			return nil
		case '\\':
			if _, err := t.read(); err != nil {
				return err
			}
		}
	}
}

func (t *Tokenizer) skipSymbolOperator() (int, error) {
	c, err := t.read()
	if err != nil {
		return 0, err
	}
	for isOperatorChar(c) {
		if c, err = t.read(); err != nil {
			return 0, err
		}
	}
	return c, nil
}

func (t *Tokenizer) skipString() (int, error) {
	if err := t.skipStringHelper(); err != nil {
		return 0, err
	}
	return t.read()
}

func (t *Tokenizer) skipStringHelper() error {
	for {
		c, err := t.read()
		if err != nil {
			return err
		}

		switch c {
		case -1, '\n':
			return t.invalidChar(c)
		case '"':
			return nil
		case '\\':
			if _, err := t.read(); err != nil {
				return err
			}
		}
	}
}

// skipLongString skips over a triple-quote-enclosed string, returning the
// character after the closing '''. Adjacent long strings are not
// concatenated at this layer: a second '''...''' run, however close, is a
// token of its own, classified by the next call to Next. Concatenating
// them is a value reader's concern, not the tokenizer's.
func (t *Tokenizer) skipLongString() (int, error) {
	if err := t.skipLongStringHelper(); err != nil {
		return 0, err
	}
	return t.read()
}

func (t *Tokenizer) skipLongStringHelper() error {
	for {
		c, err := t.read()
		if err != nil {
			return err
		}

		switch c {
		case -1:
			return t.invalidChar(c)
		case '\'':
			ok, err := t.skipEndOfLongString()
			if err != nil {
				return err
			}
			if ok {
				return nil
			}
		case '\\':
			if _, err := t.read(); err != nil {
				return err
			}
		}
	}
}

// skipEndOfLongString is called right after reading a single quote, to
// determine whether it's the start of the closing triple-quote.
func (t *Tokenizer) skipEndOfLongString() (bool, error) {
	cs, err := t.peekN(2)
	if err != nil && err != io.EOF {
		return false, err
	}

	if len(cs) < 2 || cs[0] != '\'' || cs[1] != '\'' {
		return false, nil
	}

	if err := t.skipN(2); err != nil {
		return false, err
	}
	return true, nil
}

func (t *Tokenizer) skipBlob() (int, error) {
	if err := t.skipBlobHelper(); err != nil {
		return 0, err
	}
	return t.read()
}

func (t *Tokenizer) skipBlobHelper() error {
	c, _, err := t.skipLobWhitespace()
	if err != nil {
		return err
	}

	for c != '}' {
		c, _, err = t.skipLobWhitespace()
		if err != nil {
			return err
		}
		if c == -1 {
			return t.invalidChar(c)
		}
	}

	return t.expect(func(c int) bool { return c == '}' })
}

func (t *Tokenizer) skipStruct() (int, error) { return t.skipContainer('}') }
func (t *Tokenizer) skipSexp() (int, error)   { return t.skipContainer(')') }
func (t *Tokenizer) skipList() (int, error)   { return t.skipContainer(']') }

func (t *Tokenizer) skipContainer(term int) (int, error) {
	if err := t.skipContainerHelper(term); err != nil {
		return 0, err
	}
	return t.read()
}

// skipContainerHelper walks a container's contents up to (and including)
// its matching terminator, correctly stepping over nested containers,
// strings, long strings, quoted symbols, and blobs/clobs along the way.
func (t *Tokenizer) skipContainerHelper(term int) error {
	if term != ']' && term != ')' && term != '}' {
		panic(fmt.Sprintf("unexpected container terminator: %q", term))
	}

	for {
		c, _, err := t.skipWhitespace()
		if err != nil {
			return err
		}

		switch c {
		case -1:
			return t.invalidChar(c)

		case term:
			return nil

		case '"':
			if err := t.skipStringHelper(); err != nil {
				return err
			}

		case '\'':
			ok, err := t.isTripleQuote()
			if err != nil {
				return err
			}
			if ok {
				if err := t.skipLongStringHelper(); err != nil {
					return err
				}
			} else {
				if err := t.skipSymbolQuotedHelper(); err != nil {
					return err
				}
			}

		case '(':
			if err := t.skipContainerHelper(')'); err != nil {
				return err
			}

		case '[':
			if err := t.skipContainerHelper(']'); err != nil {
				return err
			}

		case '{':
			c2, err := t.peek()
			if err != nil {
				return err
			}
			switch c2 {
			case '{':
				if _, err := t.read(); err != nil {
					return err
				}
				if err := t.skipBlobHelper(); err != nil {
					return err
				}
			case '}':
				if _, err := t.read(); err != nil {
					return err
				}
			default:
				if err := t.skipContainerHelper('}'); err != nil {
					return err
				}
			}
		}
	}
}

func (t *Tokenizer) skipDigits(c int) (int, error) {
	var err error
	for err == nil && isDigit(c) {
		c, err = t.read()
	}
	return c, err
}

// skipWhitespace skips whitespace and comments when scanning in normal
// (non-lob) territory, returning the first byte that is neither.
func (t *Tokenizer) skipWhitespace() (int, bool, error) {
	return t.skipWhitespaceWith(t.skipCommentsHandler)
}

// skipWhitespaceHelper is skipWhitespace, but unreads the terminating byte
// instead of returning it -- for callers that only want to know whether
// anything was skipped.
func (t *Tokenizer) skipWhitespaceHelper() (bool, error) {
	c, ok, err := t.skipWhitespace()
	if err != nil {
		return false, err
	}
	t.unread(c)
	return ok, nil
}

// commentHandler is the strategy skipWhitespaceWith uses when it reads a
// '/' that might be starting a comment: skip it (skipCommentsHandler,
// normal token-to-token whitespace) or fail on it (ensureNoCommentsHandler,
// lob whitespace, where comments are a syntax error). Kept as explicit
// strategies rather than collapsed into a single boolean flag, since the
// behaviors diverge and a runtime flag invites accidentally weakening the
// lob check.
type commentHandler func() (bool, error)

// skipWhitespaceWith skips whitespace, consulting handler whenever it
// reads a '/' that might be the start of a comment. Returns the first
// non-whitespace, non-comment byte, and whether anything was skipped.
func (t *Tokenizer) skipWhitespaceWith(handler commentHandler) (int, bool, error) {
	skipped := false
	for {
		c, err := t.read()
		if err != nil {
			return 0, skipped, err
		}

		switch c {
		case ' ', '\t', '\n', '\v', '\f':
			// skipped below

		case '/':
			comment, err := handler()
			if err != nil {
				return 0, skipped, err
			}
			if !comment {
				return '/', skipped, nil
			}

		default:
			return c, skipped, nil
		}
		skipped = true
	}
}

// ensureNoCommentsHandler fails if a '/' is encountered, since comments
// are not syntactically permitted inside a lob's whitespace.
func (t *Tokenizer) ensureNoCommentsHandler() (bool, error) {
	c, err := t.peek()
	if err != nil {
		return false, err
	}
	if c == '/' || c == '*' {
		return false, &CommentInLobError{t.pos - 1}
	}
	return false, nil
}

// skipCommentsHandler is called right after reading a '/' that might be
// starting a comment; it peeks one byte to decide, and skips the comment
// body if so.
func (t *Tokenizer) skipCommentsHandler() (bool, error) {
	c, err := t.peek()
	if err != nil {
		return false, err
	}

	switch c {
	case '/':
		return true, t.skipSingleLineComment()
	case '*':
		return true, t.skipBlockComment()
	default:
		return false, nil
	}
}

func (t *Tokenizer) skipSingleLineComment() error {
	for {
		c, err := t.read()
		if err != nil {
			return err
		}
		if c == -1 || c == '\n' {
			return nil
		}
	}
}

func (t *Tokenizer) skipBlockComment() error {
	star := false
	for {
		c, err := t.read()
		if err != nil {
			return err
		}
		if c == -1 {
			return &UnterminatedCommentError{t.pos - 1}
		}
		if star && c == '/' {
			return nil
		}
		star = c == '*'
	}
}
