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

import "testing"

// fixedOffsetGenerator always returns the same offset.
type fixedOffsetGenerator struct {
	offset uint8
}

func (g fixedOffsetGenerator) NextOffset() uint8 { return g.offset }

// countingOffsetGenerator wraps another generator and counts consumption.
type countingOffsetGenerator struct {
	inner RoundingOffsetGenerator
	count int
}

func (g *countingOffsetGenerator) NextOffset() uint8 {
	g.count++
	return g.inner.NextOffset()
}

func TestRequantizeIdentityAt8Bits(t *testing.T) {
	g := &countingOffsetGenerator{inner: fixedOffsetGenerator{offset: 200}}
	for v := 0; v <= 255; v++ {
		got := Requantize(uint8(v), BitDepth8, g)
		if got != uint8(v) {
			t.Fatalf("Requantize(%d, 8) = %d, want identity", v, got)
		}
	}
	if g.count != 0 {
		t.Errorf("8-bit requantization consumed %d rounding offsets, want 0", g.count)
	}
}

func TestRequantizeRange(t *testing.T) {
	for bits := BitDepth1; bits <= BitDepth7; bits++ {
		maxVal := bits.MaxValue()
		for _, offset := range []uint8{0, 1, 127, 253, 254} {
			g := fixedOffsetGenerator{offset: offset}
			for v := 0; v <= 255; v++ {
				got := Requantize(uint8(v), bits, g)
				if got > maxVal {
					t.Fatalf("Requantize(%d, %d) with offset %d = %d, exceeds max %d",
						v, bits, offset, got, maxVal)
				}
			}
		}
	}
}

func TestRequantizeMonotonic(t *testing.T) {
	for bits := BitDepth1; bits <= BitDepth7; bits++ {
		for _, offset := range []uint8{0, 127, 254} {
			g := fixedOffsetGenerator{offset: offset}
			prev := Requantize(0, bits, g)
			for v := 1; v <= 255; v++ {
				got := Requantize(uint8(v), bits, g)
				if got < prev {
					t.Fatalf("Requantize not monotonic at bits=%d offset=%d: f(%d)=%d < f(%d)=%d",
						bits, offset, v, got, v-1, prev)
				}
				prev = got
			}
		}
	}
}

func TestRequantizeWorkedExample(t *testing.T) {
	// 200 * 15 = 3000; floor(3000/255) = 11.
	got := Requantize(200, BitDepth4, fixedOffsetGenerator{offset: 0})
	if got != 11 {
		t.Errorf("Requantize(200, 4, offset 0) = %d, want 11", got)
	}
	// Endpoints map exactly at every depth.
	for bits := BitDepth1; bits <= BitDepth7; bits++ {
		if got := Requantize(0, bits, fixedOffsetGenerator{offset: 0}); got != 0 {
			t.Errorf("Requantize(0, %d) = %d, want 0", bits, got)
		}
		if got := Requantize(255, bits, fixedOffsetGenerator{offset: 0}); got != bits.MaxValue() {
			t.Errorf("Requantize(255, %d) = %d, want %d", bits, got, bits.MaxValue())
		}
	}
}
