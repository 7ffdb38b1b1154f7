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

import "encoding/binary"

// packBlockWide4x2 is the fast path for 4x2 cells at BitDepth8. With
// identity requantization there are no rounding tokens to keep in order, so
// the whole transform reduces to word shuffling: one 64-bit load per width
// position covers the full register group's depth run, and each destination
// cell is assembled from the four loads' matching 16-bit lanes. Column sums
// come from a horizontal byte sum of each load.
//
// Byte-identical to packBlockScalar by construction; the equivalence is
// pinned by tests against the reference.
func packBlockWide4x2(p *Packer, dst *PackedSideBlock, src SideMap, startWidth int, g RoundingOffsetGenerator) {
	const (
		cellWidth = 4
		cellDepth = 2
		cellSize  = cellWidth * cellDepth
	)
	cells := p.format.Cells
	groupStride := cells * cellSize

	out := dst.CurrentData()
	sums := dst.SumsOfEachSlice()

	for c := 0; c < cells; c++ {
		baseWidth := c * cellWidth

		// One depth run of RegisterSize bytes per width position.
		r0 := binary.LittleEndian.Uint64(src.depthRun(baseWidth))
		r1 := binary.LittleEndian.Uint64(src.depthRun(baseWidth + 1))
		r2 := binary.LittleEndian.Uint64(src.depthRun(baseWidth + 2))
		r3 := binary.LittleEndian.Uint64(src.depthRun(baseWidth + 3))

		// Each 16-bit lane of a run is one (d, d+1) depth pair; lane g of
		// all four runs concatenated is exactly cell (c, slice group g).
		dstOff := c * cellSize
		for grp := 0; grp < RegisterSize/cellDepth; grp++ {
			shift := uint(16 * grp)
			word := ((r0 >> shift) & 0xffff) |
				((r1>>shift)&0xffff)<<16 |
				((r2>>shift)&0xffff)<<32 |
				((r3>>shift)&0xffff)<<48
			binary.LittleEndian.PutUint64(out[dstOff+grp*groupStride:], word)
		}

		cellSums := sums[startWidth+baseWidth : startWidth+baseWidth+cellWidth]
		cellSums[0] += sumOfBytes(r0)
		cellSums[1] += sumOfBytes(r1)
		cellSums[2] += sumOfBytes(r2)
		cellSums[3] += sumOfBytes(r3)
	}
	dst.SeekForwardNCells(p.format.CellsPerGroup())
}

// sumOfBytes adds the eight bytes of x. Pairwise SWAR reduction; the final
// mask drops the garbage the unmasked adds smear into upper lanes. Max
// result 8*255 = 2040, comfortably inside the mask.
func sumOfBytes(x uint64) int32 {
	x = (x & 0x00ff00ff00ff00ff) + ((x >> 8) & 0x00ff00ff00ff00ff)
	x += x >> 16
	x += x >> 32
	return int32(x & 0xffff)
}
