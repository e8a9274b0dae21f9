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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Fingerprint reduces a (typically very large) Gödel number into the BLS12-377
// scalar field, giving a fixed-size digest.  Distinct numbers may share a
// fingerprint.
func Fingerprint(x *big.Int) fr.Element {
	var elem fr.Element
	//
	elem.SetBigInt(x)
	//
	return elem
}
