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

// packBlockFunc packs one register group. Both implementations must produce
// byte-identical destination contents and identical sums for identical
// inputs; the scalar reference defines the semantics.
type packBlockFunc func(p *Packer, dst *PackedSideBlock, src SideMap, startWidth int, g RoundingOffsetGenerator)

// Packer is one tagged packing configuration: destination tiling geometry
// plus target bit depth, with the implementation chosen once at construction.
//
// A Packer holds no per-call state and is safe for concurrent use, provided
// concurrent calls target disjoint destination regions (distinct cursor
// ranges and non-overlapping column ranges) and each call owns its rounding
// offset generator.
type Packer struct {
	format KernelSideFormat
	depth  BitDepth
	impl   packBlockFunc
}

// NewPacker validates the configuration and selects an implementation. The
// wide fast path is used for 4x2 cells at BitDepth8 when the dispatch level
// allows it; every other configuration packs with the scalar reference.
func NewPacker(format KernelSideFormat, depth BitDepth) (*Packer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if err := depth.Validate(); err != nil {
		return nil, err
	}
	p := &Packer{format: format, depth: depth, impl: packBlockScalar}
	if depth == BitDepth8 && format.Cell == (CellFormat{Width: 4, Depth: 2}) && CurrentLevel() != DispatchScalar {
		p.impl = packBlockWide4x2
	}
	return p, nil
}

// Format returns the destination tiling geometry.
func (p *Packer) Format() KernelSideFormat { return p.format }

// BitDepth returns the target bit depth.
func (p *Packer) BitDepth() BitDepth { return p.depth }

// PackBlock packs one register group: a source block KernelWidth wide and
// RegisterSize deep, already scoped via src. It requantizes every element,
// writes the cell-tiled bytes at dst's cursor, adds each written value to
// dst.SumsOfEachSlice()[startWidth+column], and advances the cursor by
// exactly CellsPerGroup cells.
//
// Rounding offsets are consumed in a fixed order: cell position outer, then
// depth row 0..RegisterSize-1, then width within the row. At BitDepth8 no
// offsets are consumed at all. The order is part of the contract; an
// order-sensitive generator (such as the cyclic one) yields reproducible
// bytes only because of it.
//
// Preconditions (asserted under the gemmdebug tag, undefined behavior
// otherwise): src is exactly KernelWidth x RegisterSize, dst has a full
// group of free capacity at the cursor, and startWidth addresses this
// slice's columns in the sums array.
func (p *Packer) PackBlock(dst *PackedSideBlock, src SideMap, startWidth int, g RoundingOffsetGenerator) {
	assertf(src.Width() == p.format.KernelWidth(), "source block width %d != kernel width %d", src.Width(), p.format.KernelWidth())
	assertf(src.Depth() == RegisterSize, "source block depth %d != register size %d", src.Depth(), RegisterSize)
	assertf(dst.Format() == p.format, "destination format %+v != packer format %+v", dst.Format(), p.format)
	assertf(dst.Pos()+p.format.GroupBytes() <= len(dst.Data()), "destination lacks capacity for a register group at cursor %d", dst.Pos())
	assertf(startWidth+p.format.KernelWidth() <= len(dst.SumsOfEachSlice()), "startWidth %d out of range for %d sum columns", startWidth, len(dst.SumsOfEachSlice()))
	p.impl(p, dst, src, startWidth, g)
}

// PackSide packs a whole operand, looping kernel-width slices in the width
// direction and register-size runs in the depth direction. The destination
// cursor therefore holds, per width slice, all of that slice's register
// groups contiguously in depth order.
//
// src must match dst's padded dimensions exactly; padding runt edges up to
// those multiples is the caller's job. The offset generator is consumed
// across blocks in the loop order above.
func (p *Packer) PackSide(dst *PackedSideBlock, src SideMap, g RoundingOffsetGenerator) error {
	if src.Width() != dst.Width() || src.Depth() != dst.Depth() {
		return errors.Errorf("pack: source %dx%d does not match packed destination %dx%d",
			src.Width(), src.Depth(), dst.Width(), dst.Depth())
	}
	kw := p.format.KernelWidth()
	for w := 0; w < src.Width(); w += kw {
		for d := 0; d < src.Depth(); d += RegisterSize {
			p.PackBlock(dst, src.Block(w, d, kw, RegisterSize), w, g)
		}
	}
	return nil
}
