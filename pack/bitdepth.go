// Copyright 2025 gemmlowp-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pack

import "github.com/pkg/errors"

// BitDepth is the number of significant bits kept per packed value, in
// [1, 8]. BitDepth8 keeps values unchanged; smaller depths requantize into
// [0, 2^bits - 1].
type BitDepth int

const (
	BitDepth1 BitDepth = 1
	BitDepth2 BitDepth = 2
	BitDepth3 BitDepth = 3
	BitDepth4 BitDepth = 4
	BitDepth5 BitDepth = 5
	BitDepth6 BitDepth = 6
	BitDepth7 BitDepth = 7
	BitDepth8 BitDepth = 8
)

// MaxValue returns the largest representable value at this depth,
// 2^bits - 1.
func (d BitDepth) MaxValue() uint8 {
	return uint8(1<<uint(d) - 1)
}

// Validate reports whether the depth is in the supported [1, 8] range.
func (d BitDepth) Validate() error {
	if d < BitDepth1 || d > BitDepth8 {
		return errors.Errorf("pack: bit depth %d out of range [1, 8]", int(d))
	}
	return nil
}
