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
	"math"
	"math/big"
	"strings"
)

// ToInteger converts a dynamically typed value into an integer.  Accepted are
// all Go integer types, big integers, floating point values holding an exact
// integer and decimal strings.  Anything else fails with ErrInvalidArgument,
// using name to identify the argument.  Note that the sign is not checked.
func ToInteger(name string, value any) (*big.Int, error) {
	switch v := value.(type) {
	case int:
		return big.NewInt(int64(v)), nil
	case int8:
		return big.NewInt(int64(v)), nil
	case int16:
		return big.NewInt(int64(v)), nil
	case int32:
		return big.NewInt(int64(v)), nil
	case int64:
		return big.NewInt(v), nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case *big.Int:
		if v == nil {
			return nil, invalidArgument(name, "is missing")
		}
		//
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case float32:
		return floatToInteger(name, float64(v))
	case float64:
		return floatToInteger(name, v)
	case string:
		return stringToInteger(name, v)
	case nil:
		return nil, invalidArgument(name, "is missing")
	default:
		return nil, invalidArgument(name, "has non-integer type %T", value)
	}
}

func floatToInteger(name string, value float64) (*big.Int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return nil, invalidArgument(name, "is not integral (%v)", value)
	}
	// Exact, since value has no fractional part.
	result, _ := big.NewFloat(value).Int(nil)
	//
	return result, nil
}

func stringToInteger(name string, value string) (*big.Int, error) {
	result, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)
	if !ok {
		return nil, invalidArgument(name, "is not a decimal integer (%q)", value)
	}
	//
	return result, nil
}
