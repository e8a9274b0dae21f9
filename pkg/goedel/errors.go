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
	"fmt"
)

// ErrInvalidArgument signals that an argument supplied to the encoder was not
// a non-negative integer.  This is the only error the encoder produces.
var ErrInvalidArgument = errors.New("invalid argument")

// Construct an invalid argument error for a given (named) argument.  The
// returned error wraps ErrInvalidArgument.
func invalidArgument(name string, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidArgument, name, fmt.Sprintf(format, args...))
}
