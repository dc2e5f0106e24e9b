package lex

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ValueKind tags which field of Value is populated.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueString
	ValueInt
	ValueBigInt
	ValueFloat
	ValueDecimal
	ValueBytes
	ValueParam
)

// Value is the decoded payload of a literal token (ICONST, NICONST, FCONST,
// NFCONST, SCONST, BCONST, PARAMETER — spec.md §3.2, §4.1 "Numeric
// literals"/"String literals"). It is a tagged struct rather than an
// interface: the set of literal shapes is closed, and a struct lets the
// lexer build a Value without an allocation for the common int/float cases.
//
// BigInt backs NICONST (spec.md's arbitrary-precision integer literal,
// suffix 'n'); Decimal backs NFCONST (arbitrary-precision decimal, suffix
// 'n' on a literal containing a '.' or exponent). BigInt is the standard
// library's math/big.Int and Decimal is shopspring/decimal's Decimal.
type Value struct {
	Kind ValueKind

	Str       string
	Int       int64
	BigInt    *big.Int
	Float     float64
	Decimal   decimal.Decimal
	Bytes     []byte
	ParamName string
}

func StringValue(s string) Value    { return Value{Kind: ValueString, Str: s} }
func IntValue(i int64) Value        { return Value{Kind: ValueInt, Int: i} }
func BigIntValue(b *big.Int) Value  { return Value{Kind: ValueBigInt, BigInt: b} }
func FloatValue(f float64) Value    { return Value{Kind: ValueFloat, Float: f} }
func DecimalValue(d decimal.Decimal) Value {
	return Value{Kind: ValueDecimal, Decimal: d}
}
func BytesValue(b []byte) Value     { return Value{Kind: ValueBytes, Bytes: b} }
func ParamValue(name string) Value  { return Value{Kind: ValueParam, ParamName: name} }
