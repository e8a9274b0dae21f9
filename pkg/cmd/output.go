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
package cmd

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Output writes results one per line.  When writing to a terminal, lines wider
// than the terminal are broken with a trailing backslash (as bc does), so
// they can be copied back as a single number.
type Output struct {
	writer io.Writer
	// Maximum line width, or zero for unlimited.
	width int
}

// NewOutput constructs an output for a given file, determining the line width
// if the file is a terminal.
func NewOutput(file *os.File) *Output {
	fd := int(file.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil {
			return &Output{file, width}
		}
	}
	//
	return &Output{file, 0}
}

// WriteLine writes a given line, splitting it if necessary.
func (p *Output) WriteLine(line string) error {
	// Leave room for the backslash
	limit := p.width - 1
	//
	for limit > 0 && len(line) > p.width {
		if _, err := fmt.Fprintf(p.writer, "%s\\\n", line[:limit]); err != nil {
			return err
		}
		//
		line = line[limit:]
	}
	//
	_, err := fmt.Fprintln(p.writer, line)
	//
	return err
}
