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

// Requantize rescales an 8-bit value into [0, 2^bits - 1]:
//
//	result = floor((value * maxVal + offset) / 255),  maxVal = 2^bits - 1
//
// with the offset drawn from g. The product value*maxVal fits in 16 bits
// (255*255 < 65536). The caller-supplied offset makes the rounding policy
// pluggable: 127 gives round-half-up, a uniform random offset gives
// stochastic rounding.
//
// At BitDepth8 this is the identity and g is NOT consulted. Callers that
// count tokens for reproducibility must account for that: the token stream
// only advances for depths below 8.
func Requantize(value uint8, depth BitDepth, g RoundingOffsetGenerator) uint8 {
	if depth == BitDepth8 {
		return value
	}
	scaled := uint16(value) * uint16(depth.MaxValue())
	offset := uint16(g.NextOffset())
	return uint8((scaled + offset) / 255)
}
