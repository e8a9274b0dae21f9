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
	"sync"
	"sync/atomic"
	"testing"
)

// Generator which counts how often it is called.
type countingGenerator struct {
	calls atomic.Int64
}

func (p *countingGenerator) Next(prev uint64) uint64 {
	p.calls.Add(1)
	return TrialDivision{}.Next(prev)
}

func Test_Cache_Empty(t *testing.T) {
	cache := NewExponentCache(nil)
	//
	if cache.Len(0) != 0 || len(cache.Primes(0, 10)) != 0 || len(cache.Offsets()) != 0 {
		t.Errorf("fresh cache is not empty")
	}
	//
	if _, ok := cache.Powers(0, 2); ok {
		t.Errorf("fresh cache has powers for 2")
	}
}

func Test_Cache_Ensure_01(t *testing.T) {
	cache := NewExponentCache(nil)
	cache.Ensure(0, 5)
	//
	if primes := cache.Primes(0, 10); !slices.Equal(primes, []uint64{2, 3, 5, 7, 11}) {
		t.Errorf("unexpected primes %v", primes)
	}
	//
	if primes := cache.Primes(0, 3); !slices.Equal(primes, []uint64{2, 3, 5}) {
		t.Errorf("unexpected primes %v", primes)
	}
}

func Test_Cache_Ensure_02(t *testing.T) {
	cache := NewExponentCache(nil)
	cache.Ensure(3, 4)
	//
	row, ok := cache.Powers(3, 7)
	if !ok {
		t.Fatalf("missing row for 7")
	}
	// 7^(d+3)
	for d := range Radix {
		expected := new(big.Int).Exp(big.NewInt(7), big.NewInt(int64(d+3)), nil)
		//
		if row[d].Cmp(expected) != 0 {
			t.Errorf("7^(%d+3) == %s != %s", d, row[d], expected)
		}
	}
	//
	if _, ok := cache.Powers(0, 7); ok {
		t.Errorf("offset 0 should not be populated")
	}
	//
	if offsets := cache.Offsets(); !slices.Equal(offsets, []uint{3}) {
		t.Errorf("unexpected offsets %v", offsets)
	}
}

// Filling is incremental, so no prime is ever generated twice for the same
// offset.
func Test_Cache_Incremental(t *testing.T) {
	gen := &countingGenerator{}
	cache := NewExponentCache(gen)
	//
	cache.Ensure(0, 10)
	cache.Ensure(0, 10)
	cache.Ensure(0, 4)
	//
	if n := gen.calls.Load(); n != 10 {
		t.Errorf("expected 10 generator calls, got %d", n)
	}
	//
	cache.Ensure(0, 15)
	//
	if n := gen.calls.Load(); n != 15 {
		t.Errorf("expected 15 generator calls, got %d", n)
	}
	// Separate offsets have separate tables
	cache.Ensure(1, 2)
	//
	if n := gen.calls.Load(); n != 17 {
		t.Errorf("expected 17 generator calls, got %d", n)
	}
}

// Rows are never replaced once inserted.
func Test_Cache_Stable(t *testing.T) {
	cache := NewExponentCache(nil)
	cache.Ensure(0, 3)
	before, _ := cache.Powers(0, 5)
	//
	cache.Ensure(0, 50)
	after, _ := cache.Powers(0, 5)
	//
	for d := range Radix {
		if before[d] != after[d] {
			t.Errorf("row for 5 replaced at digit %d", d)
		}
	}
}

func Test_Cache_Concurrent(t *testing.T) {
	t.Parallel()
	//
	var (
		wg    sync.WaitGroup
		gen   = &countingGenerator{}
		cache = NewExponentCache(gen)
	)
	//
	for i := range 64 {
		wg.Add(1)
		//
		go func() {
			defer wg.Done()
			// Mix of offsets and counts
			offset := uint(i / 32)
			cache.Ensure(offset, uint(1+(i*7)%40))
			//
			for _, p := range cache.Primes(offset, 40) {
				if _, ok := cache.Powers(offset, p); !ok {
					t.Errorf("missing row for %d (offset %d)", p, offset)
				}
			}
		}()
	}
	//
	wg.Wait()
	//
	for _, offset := range []uint{0, 1} {
		primes := cache.Primes(offset, 100)
		//
		if len(primes) != 40 {
			t.Errorf("expected 40 primes for offset %d, got %d", offset, len(primes))
		}
		//
		if !slices.Equal(primes, firstPrimes(40)) {
			t.Errorf("unexpected primes for offset %d: %v", offset, primes)
		}
	}
	// Each prime generated exactly once per offset
	if n := gen.calls.Load(); n != 80 {
		t.Errorf("expected 80 generator calls, got %d", n)
	}
}

func firstPrimes(n int) []uint64 {
	var primes []uint64
	//
	for i := uint64(2); len(primes) < n; i++ {
		if bruteForcePrime(i) {
			primes = append(primes, i)
		}
	}
	//
	return primes
}

func bruteForcePrime(n uint64) bool {
	for i := uint64(2); i < n; i++ {
		if n%i == 0 {
			return false
		}
	}
	//
	return n >= 2
}
