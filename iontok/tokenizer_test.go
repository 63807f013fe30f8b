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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextEmpty(t *testing.T) {
	tok := NewFromString("")
	require.NoError(t, tok.Next())
	assert.Equal(t, EOF, tok.Kind())
	assert.False(t, tok.Unfinished())
	assert.True(t, tok.IsEOF())
}

func TestNextSimpleSymbol(t *testing.T) {
	tok := NewFromString("null.int")
	require.NoError(t, tok.Next())
	assert.Equal(t, Symbol, tok.Kind())
	assert.True(t, tok.Unfinished())

	// A value reader consumes the whole "null.int" payload itself; Finish
	// would stop at the '.', which is not an identifier character.
	for range "null.int" {
		_, err := tok.ReadInput()
		require.NoError(t, err)
	}

	require.NoError(t, tok.Next())
	assert.Equal(t, EOF, tok.Kind())
}

func TestNextStruct(t *testing.T) {
	tok := NewFromString("foo::{a:1, b:2}")

	want := []Kind{
		Symbol, DoubleColon, OpenBrace,
		Symbol, Colon, Number, Comma,
		Symbol, Colon, Number,
		CloseBrace, EOF,
	}

	var got []Kind
	for {
		require.NoError(t, tok.Next())
		got = append(got, tok.Kind())
		if tok.Unfinished() {
			_, err := tok.Finish()
			require.NoError(t, err)
		}
		if tok.Kind() == EOF {
			break
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestNextInfinityAndOperators(t *testing.T) {
	tok := NewFromString("+inf -inf +1 -1")

	next := func(k Kind) {
		require.NoError(t, tok.Next())
		require.Equal(t, k, tok.Kind())
		if tok.Unfinished() {
			_, err := tok.Finish()
			require.NoError(t, err)
		}
	}

	next(FloatInf)
	next(FloatMinusInf)
	next(SymbolOperator) // leading '+' is not part of "+1"'s inf lookahead
	next(Number)
	next(Number) // '-' before a digit starts the number itself: "-1"
	next(EOF)
}

func TestNextAdjacentLongStringsNotConcatenated(t *testing.T) {
	tok := NewFromString("'''a''' '''b'''")

	next := func(k Kind) {
		require.NoError(t, tok.Next())
		require.Equal(t, k, tok.Kind())
		if tok.Unfinished() {
			_, err := tok.Finish()
			require.NoError(t, err)
		}
	}

	next(LongString)
	next(LongString)
	next(EOF)
}

func TestNextNumericShapes(t *testing.T) {
	tok := NewFromString("0b101 0xFF 2020-01-01T 2020")

	next := func(k Kind) {
		require.NoError(t, tok.Next())
		require.Equal(t, k, tok.Kind())
		if tok.Unfinished() {
			_, err := tok.Finish()
			require.NoError(t, err)
		}
	}

	next(Binary)
	next(Hex)
	next(Timestamp)
	next(Number)
}

func TestNextLineComment(t *testing.T) {
	tok := NewFromString("a // comment\nb")

	next := func(k Kind) {
		require.NoError(t, tok.Next())
		require.Equal(t, k, tok.Kind())
		if tok.Unfinished() {
			_, err := tok.Finish()
			require.NoError(t, err)
		}
	}

	next(Symbol)
	next(Symbol)
	next(EOF)
}

func TestNextCommentInLobFails(t *testing.T) {
	tok := NewFromString("{{/*x*/}}")
	require.NoError(t, tok.Next())
	require.Equal(t, OpenDoubleBrace, tok.Kind())

	_, err := tok.Finish()
	require.Error(t, err)
	assert.IsType(t, &CommentInLobError{}, err)
}

func TestNextLoneTrailingCRFails(t *testing.T) {
	tok := NewFromString("\r")
	_, err := tok.ReadInput()
	require.Error(t, err)
	assert.IsType(t, &EarlyEOFError{}, err)
}

func TestNextNegativeTimestampFails(t *testing.T) {
	tok := NewFromString("-2020-01-01T")
	err := tok.Next()
	require.Error(t, err)
	assert.IsType(t, &NegativeTimestampError{}, err)
}

func TestNextEOFIsTerminal(t *testing.T) {
	tok := NewFromString("")
	require.NoError(t, tok.Next())
	assert.Equal(t, EOF, tok.Kind())

	require.NoError(t, tok.Next())
	assert.Equal(t, EOF, tok.Kind())
	assert.True(t, tok.IsEOF())
}

func TestCRLFNormalization(t *testing.T) {
	test := func(name, input string) {
		t.Run(name, func(t *testing.T) {
			tok := NewFromString(input)

			c, err := tok.ReadInput()
			require.NoError(t, err)
			assert.Equal(t, int('a'), c)

			c, err = tok.ReadInput()
			require.NoError(t, err)
			assert.Equal(t, int('\n'), c)

			c, err = tok.ReadInput()
			require.NoError(t, err)
			assert.Equal(t, int('b'), c)

			c, err = tok.ReadInput()
			require.NoError(t, err)
			assert.Equal(t, -1, c)
		})
	}

	test("crlf", "a\r\nb")
	test("bare cr", "a\rb")
}

func TestUnreadRoundTrip(t *testing.T) {
	tok := NewFromString("abc")

	a, err := tok.ReadInput()
	require.NoError(t, err)
	b, err := tok.ReadInput()
	require.NoError(t, err)
	c, err := tok.ReadInput()
	require.NoError(t, err)
	posAfter := tok.Pos()

	require.NoError(t, tok.Unread(c))
	require.NoError(t, tok.Unread(b))
	require.NoError(t, tok.Unread(a))
	assert.Equal(t, posAfter-3, tok.Pos())

	a2, err := tok.ReadInput()
	require.NoError(t, err)
	b2, err := tok.ReadInput()
	require.NoError(t, err)
	c2, err := tok.ReadInput()
	require.NoError(t, err)

	assert.Equal(t, []int{a, b, c}, []int{a2, b2, c2})
	assert.Equal(t, posAfter, tok.Pos())
}

func TestPeekMaxIsNonDestructive(t *testing.T) {
	tok := NewFromString("abcdef")

	first, err := tok.PeekMax(3)
	require.NoError(t, err)

	second, err := tok.PeekMax(3)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	for _, want := range first {
		c, err := tok.ReadInput()
		require.NoError(t, err)
		assert.Equal(t, want, c)
	}
}

func TestPeekExactlyFailsShort(t *testing.T) {
	tok := NewFromString("ab")
	_, err := tok.PeekExactly(5)
	require.Error(t, err)
	assert.IsType(t, &EarlyEOFError{}, err)
}

func TestPositionMonotonicity(t *testing.T) {
	tok := NewFromString("abc")

	var last uint64
	for i := 0; i < 3; i++ {
		_, err := tok.ReadInput()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, tok.Pos(), last)
		last = tok.Pos()
	}

	require.NoError(t, tok.Unread('c'))
	assert.Equal(t, last-1, tok.Pos())
}

func TestUnreadAtStartFails(t *testing.T) {
	tok := NewFromString("abc")
	err := tok.Unread('a')
	require.Error(t, err)
	assert.IsType(t, &UnreadAtStartError{}, err)
	assert.Equal(t, uint64(0), tok.Pos())
}

func TestStopCharSlash(t *testing.T) {
	test := func(name, input string, expected bool) {
		t.Run(name, func(t *testing.T) {
			tok := NewFromString(input)
			c, err := tok.ReadInput()
			require.NoError(t, err)
			require.Equal(t, int('/'), c)

			ok, err := tok.IsStopChar(c)
			require.NoError(t, err)
			assert.Equal(t, expected, ok)
		})
	}

	test("comment start //", "//x", true)
	test("comment start /*", "/*x", true)
	test("operator slash", "/x", false)
	test("trailing slash at eof", "/", false)
}
