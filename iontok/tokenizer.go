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
	"bufio"
	"bytes"
	"io"
)

// Tokenizer is a pull-driven scanner over an Ion text byte stream. It is
// not safe for concurrent use; callers needing that must add their own
// synchronization.
type Tokenizer struct {
	in     *bufio.Reader
	buffer []int // LIFO peek/unread stack; tail is next to be read.

	kind       Kind
	unfinished bool
	pos        uint64
}

// New constructs a Tokenizer reading from r.
func New(r io.Reader) *Tokenizer {
	return &Tokenizer{in: bufio.NewReader(r)}
}

// NewFromBytes constructs a Tokenizer over an in-memory byte slice.
func NewFromBytes(b []byte) *Tokenizer {
	return New(bytes.NewReader(b))
}

// NewFromString constructs a Tokenizer over an in-memory string.
func NewFromString(s string) *Tokenizer {
	return New(bytes.NewReader([]byte(s)))
}

// Kind returns the type of the current token.
func (t *Tokenizer) Kind() Kind {
	return t.kind
}

// Unfinished reports whether the caller still needs to consume or Finish
// the payload of the current token before calling Next again.
func (t *Tokenizer) Unfinished() bool {
	return t.unfinished
}

// Pos returns the current logical position: the number of post-
// normalization bytes delivered by ReadInput since construction.
func (t *Tokenizer) Pos() uint64 {
	return t.pos
}

// IsEOF reports whether the tokenizer has classified EOF and has no
// buffered input left to give back.
func (t *Tokenizer) IsEOF() bool {
	return t.kind == EOF && len(t.buffer) == 0
}

// Next advances to the next token in the input stream. It returns an error
// only for unexpected/malformed input; EOF is reported as a normal
// classification (Kind() == EOF), not an error.
func (t *Tokenizer) Next() error {
	var c int
	var err error

	if t.unfinished {
		c, err = t.skipValue()
	} else {
		c, _, err = t.skipWhitespace()
	}
	if err != nil {
		return err
	}

	switch {
	case c == -1:
		// unfinished=false: EOF has no payload to skip, and Next must
		// keep reporting EOF on every subsequent call (spec invariant),
		// which would panic in skipValue if left unfinished.
		return t.ok(EOF, false)

	case c == ':':
		c2, err := t.peek()
		if err != nil {
			return err
		}
		if c2 == ':' {
			if _, err := t.read(); err != nil {
				return err
			}
			return t.ok(DoubleColon, false)
		}
		return t.ok(Colon, false)

	case c == '{':
		c2, err := t.peek()
		if err != nil {
			return err
		}
		if c2 == '{' {
			if _, err := t.read(); err != nil {
				return err
			}
			return t.ok(OpenDoubleBrace, true)
		}
		return t.ok(OpenBrace, false)

	case c == '}':
		return t.ok(CloseBrace, false)

	case c == '[':
		return t.ok(OpenBracket, true)

	case c == ']':
		return t.ok(CloseBracket, false)

	case c == '(':
		return t.ok(OpenParen, true)

	case c == ')':
		return t.ok(CloseParen, false)

	case c == ',':
		return t.ok(Comma, false)

	case c == '.':
		c2, err := t.peek()
		if err != nil {
			return err
		}
		if isOperatorChar(c2) {
			t.unread(c)
			return t.ok(SymbolOperator, true)
		}
		return t.ok(Dot, false)

	case c == '\'':
		ok, err := t.isTripleQuote()
		if err != nil {
			return err
		}
		if ok {
			return t.ok(LongString, true)
		}
		return t.ok(SymbolQuoted, true)

	case c == '+':
		ok, err := t.isInf(c)
		if err != nil {
			return err
		}
		if ok {
			return t.ok(FloatInf, false)
		}
		t.unread(c)
		return t.ok(SymbolOperator, true)

	case c == '-':
		c2, err := t.peek()
		if err != nil {
			return err
		}

		if isDigit(c2) {
			if _, err := t.read(); err != nil {
				return err
			}

			kk, err := t.scanForNumericType(c2)
			if err != nil {
				return err
			}
			if kk == Timestamp {
				return &NegativeTimestampError{t.pos - 1}
			}
			t.unread(c2)
			t.unread(c)
			return t.ok(kk, true)
		}

		ok, err := t.isInf(c)
		if err != nil {
			return err
		}
		if ok {
			return t.ok(FloatMinusInf, false)
		}

		t.unread(c)
		return t.ok(SymbolOperator, true)

	case isOperatorChar(c):
		t.unread(c)
		return t.ok(SymbolOperator, true)

	case c == '"':
		return t.ok(String, true)

	case isIdentifierStart(c):
		t.unread(c)
		return t.ok(Symbol, true)

	case isDigit(c):
		kk, err := t.scanForNumericType(c)
		if err != nil {
			return err
		}
		t.unread(c)
		return t.ok(kk, true)

	default:
		return t.invalidChar(c)
	}
}

func (t *Tokenizer) ok(k Kind, unfinished bool) error {
	t.kind = k
	t.unfinished = unfinished
	return nil
}

// Finish discards the payload of the current token, if it hasn't already
// been consumed, so that a subsequent Next starts clean. It returns false
// if the current token was already finished.
func (t *Tokenizer) Finish() (bool, error) {
	if !t.unfinished {
		return false, nil
	}

	c, err := t.skipValue()
	if err != nil {
		return true, err
	}

	t.unread(c)
	t.unfinished = false
	return true, nil
}

// isTripleQuote is called immediately after reading a single quote, and
// determines whether it's the start of a '''-quoted long string. Failing
// to peek two bytes (EOF) is not an error -- it just means not-triple-quote.
func (t *Tokenizer) isTripleQuote() (bool, error) {
	cs, err := t.peekN(2)
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if cs[0] == '\'' && cs[1] == '\'' {
		if err := t.skipN(2); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// isInf is called immediately after reading '+' or '-', and determines
// whether it begins a cleanly-terminated +inf/-inf keyword.
func (t *Tokenizer) isInf(c int) (bool, error) {
	if c != '+' && c != '-' {
		return false, nil
	}

	cs, err := t.peekN(5)
	if err != nil && err != io.EOF {
		return false, err
	}

	if len(cs) < 3 || cs[0] != 'i' || cs[1] != 'n' || cs[2] != 'f' {
		return false, nil
	}

	if len(cs) == 3 || isStopChar(cs[3]) {
		if err := t.skipN(3); err != nil {
			return false, err
		}
		return true, nil
	}

	if cs[3] == '/' && len(cs) > 4 && (cs[4] == '/' || cs[4] == '*') {
		if err := t.skipN(3); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

// scanForNumericType peeks a bounded number of characters to rule binary,
// hex, and timestamp shapes in or out; anything left over is classified
// Number and disambiguated for real by a reader consuming the payload.
func (t *Tokenizer) scanForNumericType(c int) (Kind, error) {
	if !isDigit(c) {
		panic("scanForNumericType called with a non-digit")
	}

	cs, err := t.peekN(4)
	if err != nil && err != io.EOF {
		return Invalid, err
	}

	if c == '0' && len(cs) > 0 {
		switch {
		case cs[0] == 'b' || cs[0] == 'B':
			return Binary, nil
		case cs[0] == 'x' || cs[0] == 'X':
			return Hex, nil
		}
	}

	if len(cs) >= 4 && isDigit(cs[0]) && isDigit(cs[1]) && isDigit(cs[2]) {
		if cs[3] == '-' || cs[3] == 'T' {
			return Timestamp, nil
		}
	}

	return Number, nil
}

// IsStopChar reports whether c ends an adjacent unquoted token. Unlike the
// unexported isStopChar predicate, this also resolves the conditional '/'
// rule by peeking one further byte, so don't call it with a byte you've
// already peeked at without unreading.
func (t *Tokenizer) IsStopChar(c int) (bool, error) {
	if isStopChar(c) {
		return true, nil
	}
	if c == '/' {
		c2, err := t.peek()
		if err != nil {
			return false, err
		}
		if c2 == '/' || c2 == '*' {
			return true, nil
		}
	}
	return false, nil
}

// expect reads a byte and asserts it matches f, failing with
// UnexpectedCharError otherwise.
func (t *Tokenizer) expect(f matcher) error {
	c, err := t.read()
	if err != nil {
		return err
	}
	if !f(c) {
		return t.invalidChar(c)
	}
	return nil
}

func (t *Tokenizer) invalidChar(c int) error {
	if c == -1 {
		return &EarlyEOFError{t.pos - 1}
	}
	return &UnexpectedCharError{rune(c), t.pos - 1}
}

// ReadInput reads and returns the next byte of input, or -1 at EOF.
// Newlines are normalized: a '\r' (whether or not followed by '\n') is
// delivered as a single '\n'.
func (t *Tokenizer) ReadInput() (int, error) {
	return t.read()
}

// read is the unexported implementation shared by ReadInput and every
// internal caller.
func (t *Tokenizer) read() (int, error) {
	t.pos++

	if n := len(t.buffer); n > 0 {
		c := t.buffer[n-1]
		t.buffer = t.buffer[:n-1]
		return c, nil
	}

	c, err := t.in.ReadByte()
	if err == io.EOF {
		return -1, nil
	}
	if err != nil {
		return 0, &IOError{err}
	}

	if c == '\r' {
		// A lone trailing '\r' can't be normalized -- we don't know yet
		// whether it's "\r\n" or a bare "\r" until we see one more byte,
		// and there isn't one.
		cs, err := t.in.Peek(1)
		if err == io.EOF {
			return 0, &EarlyEOFError{t.pos - 1}
		}
		if err != nil {
			return 0, &IOError{err}
		}
		if cs[0] == '\n' {
			if _, err := t.in.ReadByte(); err != nil {
				return 0, &IOError{err}
			}
		}
		return '\n', nil
	}

	return int(c), nil
}

// Unread pushes c (which may be -1, representing EOF) back onto the input
// so it will be the next byte returned by ReadInput. Fails with
// UnreadAtStartError if called before anything has been read (Pos() == 0).
func (t *Tokenizer) Unread(c int) error {
	if t.pos == 0 {
		return &UnreadAtStartError{}
	}
	t.unread(c)
	return nil
}

func (t *Tokenizer) unread(c int) {
	t.pos--
	t.buffer = append(t.buffer, c)
}

// PeekOne returns the next byte of input without consuming it.
func (t *Tokenizer) PeekOne() (int, error) {
	return t.peek()
}

func (t *Tokenizer) peek() (int, error) {
	if n := len(t.buffer); n > 0 {
		return t.buffer[n-1], nil
	}

	c, err := t.read()
	if err != nil {
		return 0, err
	}
	t.unread(c)
	return c, nil
}

// PeekMax reads up to n bytes ahead, stopping early on EOF, and returns
// them in read order without disturbing the stream.
func (t *Tokenizer) PeekMax(n int) ([]int, error) {
	cs, err := t.peekN(n)
	if err == io.EOF {
		return cs, nil
	}
	return cs, err
}

// PeekExactly reads exactly n bytes ahead, failing with EarlyEOFError if
// fewer are available, without disturbing the stream either way.
func (t *Tokenizer) PeekExactly(n int) ([]int, error) {
	cs, err := t.peekN(n)
	if err == io.EOF {
		return nil, &EarlyEOFError{t.pos}
	}
	return cs, err
}

// peekN peeks at the next n bytes of input (fewer, plus io.EOF, if the
// source runs dry first), leaving the stream unchanged either way.
func (t *Tokenizer) peekN(n int) ([]int, error) {
	var ret []int
	var err error

	for i := 0; i < n; i++ {
		var c int
		c, err = t.read()
		if err != nil {
			break
		}
		if c == -1 {
			err = io.EOF
			break
		}
		ret = append(ret, c)
	}

	if err == io.EOF {
		t.unread(-1)
	}
	for i := len(ret) - 1; i >= 0; i-- {
		t.unread(ret[i])
	}

	return ret, err
}

// SkipOne discards one byte of input, returning false (without error) if
// the source was already exhausted.
func (t *Tokenizer) SkipOne() (bool, error) {
	c, err := t.read()
	if err != nil {
		return false, err
	}
	return c != -1, nil
}

// SkipExactly discards exactly n bytes of input, returning false (without
// error) if EOF was reached first.
func (t *Tokenizer) SkipExactly(n int) (bool, error) {
	for i := 0; i < n; i++ {
		c, err := t.read()
		if err != nil {
			return false, err
		}
		if c == -1 {
			return false, nil
		}
	}
	return true, nil
}

// skipN discards the next n bytes of input; presumably the caller already
// peeked at them and decided they're not worth keeping.
func (t *Tokenizer) skipN(n int) error {
	for i := 0; i < n; i++ {
		c, err := t.read()
		if err != nil {
			return err
		}
		if c == -1 {
			break
		}
	}
	return nil
}
