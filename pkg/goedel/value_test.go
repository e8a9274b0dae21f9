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
	"errors"
	"math"
	"math/big"
	"testing"
)

func Test_ToInteger_01(t *testing.T) {
	checkToInteger(t, 0, "0")
	checkToInteger(t, int8(-5), "-5")
	checkToInteger(t, int16(300), "300")
	checkToInteger(t, int32(-70000), "-70000")
	checkToInteger(t, int64(math.MaxInt64), "9223372036854775807")
	checkToInteger(t, uint(7), "7")
	checkToInteger(t, uint16(65535), "65535")
	checkToInteger(t, uint32(1), "1")
	checkToInteger(t, uint64(math.MaxUint64), "18446744073709551615")
	checkToInteger(t, float32(16), "16")
	checkToInteger(t, 1e20, "100000000000000000000")
	checkToInteger(t, " 42 ", "42")
	checkToInteger(t, "-123456789012345678901234567890", "-123456789012345678901234567890")
}

func Test_ToInteger_02(t *testing.T) {
	// Result does not alias the argument
	n := big.NewInt(5)
	r, _ := ToInteger("n", n)
	r.SetInt64(6)
	//
	if n.Int64() != 5 {
		t.Errorf("argument modified")
	}
}

func Test_ToInteger_Invalid(t *testing.T) {
	for _, v := range []any{3.5, -0.25, math.NaN(), math.Inf(1), math.Inf(-1), "", "0x10", "12a",
		true, struct{}{}, nil, (*big.Int)(nil)} {
		if _, err := ToInteger("n", v); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ToInteger(%v) gave %v", v, err)
		}
	}
}

func checkToInteger(t *testing.T, value any, expected string) {
	r, err := ToInteger("n", value)
	//
	if err != nil {
		t.Errorf("ToInteger(%v) failed: %v", value, err)
	} else if r.String() != expected {
		t.Errorf("ToInteger(%v) == %s != %s", value, r, expected)
	}
}
