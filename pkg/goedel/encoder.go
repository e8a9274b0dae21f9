// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package goedel

import (
	"math/big"
	"slices"
)

// Encoder maps non-negative integers to their Gödel numbers.  The k-th
// decimal digit of an integer (most significant first, unless reversed)
// becomes the exponent of the k-th prime, after adding a fixed offset.
//
// Digits equal to zero contribute a factor of one.  Hence, with a zero offset,
// integers differing only in trailing zeros (e.g. 23 and 230) have the same
// encoding.  A positive offset distinguishes them.
type Encoder struct {
	cache *ExponentCache
}

// NewEncoder constructs an encoder backed by a given cache.  A nil cache is
// replaced by a fresh (private) one.
func NewEncoder(cache *ExponentCache) *Encoder {
	if cache == nil {
		cache = NewExponentCache(nil)
	}
	//
	return &Encoder{cache}
}

// Cache returns the exponent cache used by this encoder.
func (p *Encoder) Cache() *ExponentCache {
	return p.cache
}

// Encode computes the Gödel number of n, where offset is added to every digit
// before exponentiation and reverse pairs the first prime with the least
// significant digit.  This fails with ErrInvalidArgument if n is nil or
// negative, or offset is negative.
func (p *Encoder) Encode(n *big.Int, offset int, reverse bool) (*big.Int, error) {
	switch {
	case n == nil:
		return nil, invalidArgument("n", "is missing")
	case n.Sign() < 0:
		return nil, invalidArgument("n", "is negative (%s)", n)
	case offset < 0:
		return nil, invalidArgument("offset", "is negative (%d)", offset)
	}
	//
	var (
		digits = []byte(n.Text(Radix))
		length = uint(len(digits))
		off    = uint(offset)
		result = big.NewInt(1)
	)
	// Make sure enough primes are available
	p.cache.Ensure(off, length)
	//
	primes := p.cache.Primes(off, length)
	//
	if reverse {
		slices.Reverse(digits)
	}
	//
	for i, prime := range primes {
		row, ok := p.cache.Powers(off, prime)
		// Sanity check
		if !ok {
			panic("missing exponent cache row")
		}
		//
		result.Mul(result, row[digits[i]-'0'])
	}
	//
	return result, nil
}

// Enc is shorthand for encoding n with a zero offset and no reversal.
func (p *Encoder) Enc(n *big.Int) (*big.Int, error) {
	return p.Encode(n, 0, false)
}

// EncodeValue is like Encode, except that n and offset are dynamically typed.
// Both are first validated as integers (see ToInteger), and offset must
// additionally fit in an int.
func (p *Encoder) EncodeValue(n any, offset any, reverse bool) (*big.Int, error) {
	val, err := ToInteger("n", n)
	if err != nil {
		return nil, err
	}
	//
	off, err := ToInteger("offset", offset)
	//
	switch {
	case err != nil:
		return nil, err
	case !off.IsInt64() || off.Int64() != int64(int(off.Int64())):
		return nil, invalidArgument("offset", "is out of range (%s)", off)
	}
	//
	return p.Encode(val, int(off.Int64()), reverse)
}

// ============================================================================
// Default encoder
// ============================================================================

// Process-wide encoder shared by the package-level functions.
var defaultEncoder = NewEncoder(nil)

// Default returns the process-wide encoder used by Encode, Enc and
// EncodeValue.
func Default() *Encoder {
	return defaultEncoder
}

// Encode computes the Gödel number of n using the process-wide encoder.
func Encode(n *big.Int, offset int, reverse bool) (*big.Int, error) {
	return defaultEncoder.Encode(n, offset, reverse)
}

// Enc is an alias for Encode(n, 0, false).
func Enc(n *big.Int) (*big.Int, error) {
	return defaultEncoder.Enc(n)
}

// EncodeValue computes the Gödel number of a dynamically typed n using the
// process-wide encoder.
func EncodeValue(n any, offset any, reverse bool) (*big.Int, error) {
	return defaultEncoder.EncodeValue(n, offset, reverse)
}
