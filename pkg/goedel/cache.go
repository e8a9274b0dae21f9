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
	"slices"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// ExponentCache memoizes, for each offset, the rows of prime powers used by
// the encoder.  The cache only grows: once a row exists for a given (offset,
// prime) pair it is never recomputed or modified.  An ExponentCache is safe
// for concurrent use.
type ExponentCache struct {
	// Generator used to find new primes.
	gen Generator
	// Guards the tables map itself (but not the tables).
	mux sync.RWMutex
	// Per-offset tables.
	tables map[uint]*offsetTable
}

// Table of cached rows for a single offset.  The mutex serialises the
// "check count, then fill" sequence.
type offsetTable struct {
	mux sync.Mutex
	// Cached primes in ascending order.
	primes []uint64
	// Power rows indexed by prime.
	rows map[uint64]PowerRow
}

// NewExponentCache constructs an empty cache which obtains primes from the
// given generator.  A nil generator defaults to trial division.
func NewExponentCache(gen Generator) *ExponentCache {
	if gen == nil {
		gen = TrialDivision{}
	}
	//
	return &ExponentCache{gen: gen, tables: make(map[uint]*offsetTable)}
}

// Ensure that at least count primes are cached for the given offset,
// generating more as necessary.
func (p *ExponentCache) Ensure(offset uint, count uint) {
	table := p.table(offset)
	//
	table.mux.Lock()
	defer table.mux.Unlock()
	//
	have := uint(len(table.primes))
	if have >= count {
		return
	}
	//
	start := time.Now()
	prev := NoPrime
	//
	if have > 0 {
		prev = table.primes[have-1]
	}
	//
	for uint(len(table.primes)) < count {
		prime, row := NextPrime(p.gen, prev, offset)
		table.primes = append(table.primes, prime)
		table.rows[prime] = row
		prev = prime
	}
	//
	log.Debugf("filled exponent cache (offset %d) from %d to %d primes in %s", offset, have, count,
		time.Since(start))
}

// Len returns the number of primes cached for the given offset.
func (p *ExponentCache) Len(offset uint) uint {
	table := p.lookup(offset)
	if table == nil {
		return 0
	}
	//
	table.mux.Lock()
	defer table.mux.Unlock()
	//
	return uint(len(table.primes))
}

// Primes returns (at most) the count smallest primes cached for the given
// offset in ascending order.
func (p *ExponentCache) Primes(offset uint, count uint) []uint64 {
	table := p.lookup(offset)
	if table == nil {
		return nil
	}
	//
	table.mux.Lock()
	defer table.mux.Unlock()
	//
	count = min(count, uint(len(table.primes)))
	//
	return slices.Clone(table.primes[:count])
}

// Powers returns the cached row of powers for a given prime and offset, or
// false if no such row has been cached.
func (p *ExponentCache) Powers(offset uint, prime uint64) (PowerRow, bool) {
	table := p.lookup(offset)
	if table == nil {
		return PowerRow{}, false
	}
	//
	table.mux.Lock()
	defer table.mux.Unlock()
	//
	row, ok := table.rows[prime]
	//
	return row, ok
}

// Offsets returns the offsets for which a table exists, in ascending order.
func (p *ExponentCache) Offsets() []uint {
	p.mux.RLock()
	defer p.mux.RUnlock()
	//
	offsets := make([]uint, 0, len(p.tables))
	//
	for k := range p.tables {
		offsets = append(offsets, k)
	}
	// Sort for determinism
	slices.Sort(offsets)
	//
	return offsets
}

// Lookup the table for an offset, returning nil if there is none.
func (p *ExponentCache) lookup(offset uint) *offsetTable {
	p.mux.RLock()
	defer p.mux.RUnlock()
	//
	return p.tables[offset]
}

// Lookup the table for an offset, allocating it if necessary.
func (p *ExponentCache) table(offset uint) *offsetTable {
	if table := p.lookup(offset); table != nil {
		return table
	}
	//
	p.mux.Lock()
	defer p.mux.Unlock()
	// Check again, since another goroutine may have got here first.
	table, ok := p.tables[offset]
	//
	if !ok {
		table = &offsetTable{rows: make(map[uint64]PowerRow)}
		p.tables[offset] = table
	}
	//
	return table
}
