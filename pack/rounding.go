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

// RoundingOffsetGenerator is a sequential source of rounding offsets in
// [0, 255), consumed once per requantized value in the traversal order
// documented on Packer.PackBlock.
//
// A generator with internal sequence state is exclusively owned by one
// in-flight pack call. Callers parallelizing over disjoint column ranges must
// give each call its own generator instance; sharing one would scramble the
// per-element consumption order.
type RoundingOffsetGenerator interface {
	// NextOffset returns the next rounding offset, in [0, 255).
	NextOffset() uint8
}

// NearestRoundingOffsetGenerator always returns 127, turning the
// requantization divide into round-half-up. It is stateless, so the token
// ordering contract is trivially satisfied.
type NearestRoundingOffsetGenerator struct{}

// NewNearestRoundingOffsetGenerator returns a round-to-nearest offset source.
func NewNearestRoundingOffsetGenerator() NearestRoundingOffsetGenerator {
	return NearestRoundingOffsetGenerator{}
}

// NextOffset returns 127.
func (NearestRoundingOffsetGenerator) NextOffset() uint8 { return 127 }

// ProbabilisticRoundingOffsetGenerator returns pseudo-random offsets in
// [0, 255) from a xorshift32 sequence, giving stochastic rounding: the
// expected requantized value equals the exact real-valued rescaling.
// Deterministic for a given seed.
type ProbabilisticRoundingOffsetGenerator struct {
	state uint32
}

// NewProbabilisticRoundingOffsetGenerator seeds a stochastic offset source.
// A zero seed is replaced with a fixed nonzero constant since xorshift has a
// fixed point at zero.
func NewProbabilisticRoundingOffsetGenerator(seed uint32) *ProbabilisticRoundingOffsetGenerator {
	if seed == 0 {
		seed = 0x9e3779b9
	}
	return &ProbabilisticRoundingOffsetGenerator{state: seed}
}

// NextOffset advances the xorshift32 state and reduces it into [0, 255).
func (g *ProbabilisticRoundingOffsetGenerator) NextOffset() uint8 {
	x := g.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = x
	return uint8(x % 255)
}

// CyclicRoundingOffsetGenerator walks the full offset range 0, 1, ..., 254
// and wraps. Averaged over one cycle the rounding is exact, and the sequence
// is order-sensitive, which makes it the generator of choice for tests that
// pin the per-element consumption order.
type CyclicRoundingOffsetGenerator struct {
	next uint8
}

// NewCyclicRoundingOffsetGenerator returns a cyclic offset source starting
// at 0.
func NewCyclicRoundingOffsetGenerator() *CyclicRoundingOffsetGenerator {
	return &CyclicRoundingOffsetGenerator{}
}

// NextOffset returns the current position in the 255-cycle and advances.
func (g *CyclicRoundingOffsetGenerator) NextOffset() uint8 {
	v := g.next
	if g.next == 254 {
		g.next = 0
	} else {
		g.next++
	}
	return v
}
