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

// PackedSideBlock is the destination of the packing transform: a flat byte
// buffer partitioned into cells, a per-destination-column int32 sum array,
// and a forward-only write cursor measured in whole cells.
//
// The byte buffer and the sums are independently addressable by the
// downstream multiply kernel via Data and SumsOfEachSlice. The block never
// reads or resets its own sums; NewPackedSideBlock hands them out zeroed and
// Reset re-zeroes them on explicit request.
type PackedSideBlock struct {
	format KernelSideFormat
	width  int
	depth  int
	data   []uint8
	sums   []int32
	pos    int
}

// NewPackedSideBlock allocates a zeroed destination for a width x depth
// operand. Dimensions must be pre-padded by the caller: width to a multiple
// of the format's kernel width, depth to a multiple of RegisterSize.
func NewPackedSideBlock(format KernelSideFormat, width, depth int) (*PackedSideBlock, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || width%format.KernelWidth() != 0 {
		return nil, errors.Errorf("pack: width %d is not a positive multiple of kernel width %d", width, format.KernelWidth())
	}
	if depth <= 0 || depth%RegisterSize != 0 {
		return nil, errors.Errorf("pack: depth %d is not a positive multiple of register size %d", depth, RegisterSize)
	}
	return &PackedSideBlock{
		format: format,
		width:  width,
		depth:  depth,
		data:   make([]uint8, width*depth),
		sums:   make([]int32, width),
	}, nil
}

// Format returns the tiling geometry this block was sized for.
func (b *PackedSideBlock) Format() KernelSideFormat { return b.format }

// Width returns the padded operand width the block covers.
func (b *PackedSideBlock) Width() int { return b.width }

// Depth returns the padded operand depth the block covers.
func (b *PackedSideBlock) Depth() int { return b.depth }

// Data returns the whole packed byte buffer.
func (b *PackedSideBlock) Data() []uint8 { return b.data }

// CurrentData returns the buffer from the write cursor onward; the next
// register group of cells is written at its start.
func (b *PackedSideBlock) CurrentData() []uint8 { return b.data[b.pos:] }

// Pos returns the cursor's byte offset, for tests and diagnostics.
func (b *PackedSideBlock) Pos() int { return b.pos }

// SumsOfEachSlice returns the per-destination-column running sums. The
// packing transform adds to these; it never overwrites or clears them.
func (b *PackedSideBlock) SumsOfEachSlice() []int32 { return b.sums }

// SeekForwardNCells commits n freshly written cells, moving the cursor past
// them. The cursor only moves forward; capacity is the caller's problem
// (release builds do not bounds-check here).
func (b *PackedSideBlock) SeekForwardNCells(n int) {
	assertf(n >= 0, "cannot seek backward by %d cells", -n)
	b.pos += n * b.format.Cell.Size()
	assertf(b.pos <= len(b.data), "cursor %d past end of %d-byte packed buffer", b.pos, len(b.data))
}

// Reset rewinds the cursor and zeroes the sums so the block can be reused
// for another operand of the same shape.
func (b *PackedSideBlock) Reset() {
	b.pos = 0
	clear(b.sums)
}
