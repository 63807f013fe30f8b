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

// Kind identifies the lexical category of the token currently held by a
// Tokenizer. The zero value, Invalid, means classification never succeeded.
type Kind int

const (
	Invalid Kind = iota

	EOF // No more input.

	Number    // Decimal integer or decimal/real number; shape not yet known.
	Binary    // 0b[01]+
	Hex       // 0x[0-9a-fA-F]+
	Timestamp // 2001-01-01T00:00:00.000Z

	FloatInf      // +inf
	FloatMinusInf // -inf

	Symbol         // [a-zA-Z_$][a-zA-Z0-9_$]*
	SymbolQuoted   // '...'
	SymbolOperator // run of operator characters, e.g. +-

	String     // "..."
	LongString // '''...'''

	Dot         // .
	Comma       // ,
	Colon       // :
	DoubleColon // ::

	OpenParen    // (
	CloseParen   // )
	OpenBrace    // {
	CloseBrace   // }
	OpenBracket  // [
	CloseBracket // ]

	OpenDoubleBrace // {{ -- the closing }} is absorbed by the blob/clob reader.
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "<invalid>"
	case EOF:
		return "<EOF>"
	case Number:
		return "<number>"
	case Binary:
		return "<binary>"
	case Hex:
		return "<hex>"
	case Timestamp:
		return "<timestamp>"
	case FloatInf:
		return "+inf"
	case FloatMinusInf:
		return "-inf"
	case Symbol:
		return "<symbol>"
	case SymbolQuoted:
		return "<quoted-symbol>"
	case SymbolOperator:
		return "<operator>"
	case String:
		return "<string>"
	case LongString:
		return "<long-string>"
	case Dot:
		return "."
	case Comma:
		return ","
	case Colon:
		return ":"
	case DoubleColon:
		return "::"
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	case OpenBrace:
		return "{"
	case CloseBrace:
		return "}"
	case OpenBracket:
		return "["
	case CloseBracket:
		return "]"
	case OpenDoubleBrace:
		return "{{"
	default:
		return "<???>"
	}
}
