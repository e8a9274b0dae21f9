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

	"github.com/consensys/go-goedel/pkg/util/math"
)

// Radix is the base in which integers are split into digits.
const Radix = 10

// NoPrime is the cursor value from which generation starts.  It acts as the
// predecessor of the first prime.
const NoPrime uint64 = 0

// PowerRow holds the precomputed powers p^(d+offset) of some prime p for each
// digit d.  Entries are shared between encodings and must never be modified.
type PowerRow [Radix]*big.Int

// Generator produces primes in increasing order.  Implementations carry no
// state between calls: the caller owns the cursor.
type Generator interface {
	// Next returns the smallest prime strictly greater than prev.
	Next(prev uint64) uint64
}

// TrialDivision is a generator which scans upwards from the previous prime,
// testing each candidate by trial division.
type TrialDivision struct{}

// Next returns the smallest prime strictly greater than prev.  The scan has no
// upper bound.
func (p TrialDivision) Next(prev uint64) uint64 {
	for candidate := prev + 1; ; candidate++ {
		if math.IsPrime(candidate) {
			return candidate
		}
	}
}

// NextPrime determines the next prime after prev using a given generator,
// along with its row of powers for the given offset.
func NextPrime(gen Generator, prev uint64, offset uint) (uint64, PowerRow) {
	prime := gen.Next(prev)
	//
	return prime, Powers(prime, offset)
}

// Powers computes the row of powers p^(d+offset) for each digit d of a given
// prime p.
func Powers(prime uint64, offset uint) PowerRow {
	var (
		row  PowerRow
		base = new(big.Int).SetUint64(prime)
	)
	// Lowest power is computed directly, the rest by repeated multiplication.
	row[0] = math.PowBig(prime, offset)
	//
	for d := 1; d < Radix; d++ {
		row[d] = new(big.Int).Mul(row[d-1], base)
	}
	//
	return row
}
