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

// packBlockScalar is the reference transform: straightforward nested loops
// over cell position, depth row, and width. It works for any validated
// geometry and bit depth and defines both the destination byte layout and
// the rounding-token consumption order; optimized paths must match it byte
// for byte.
//
// Destination addressing per register group: cell c, depth slice group
// g = row/cellDepth starts at byte (g*cells + c)*cellSize; within the cell,
// (w, d) lands at w*cellDepth + d.
func packBlockScalar(p *Packer, dst *PackedSideBlock, src SideMap, startWidth int, g RoundingOffsetGenerator) {
	cellWidth := p.format.Cell.Width
	cellDepth := p.format.Cell.Depth
	cellSize := p.format.Cell.Size()
	cells := p.format.Cells

	out := dst.CurrentData()
	sums := dst.SumsOfEachSlice()

	for c := 0; c < cells; c++ {
		baseWidth := c * cellWidth
		cellSums := sums[startWidth+baseWidth : startWidth+baseWidth+cellWidth]
		for r := 0; r < RegisterSize; r++ {
			base := (r/cellDepth*cells+c)*cellSize + r%cellDepth
			for w := 0; w < cellWidth; w++ {
				v := Requantize(src.At(baseWidth+w, r), p.depth, g)
				out[base+w*cellDepth] = v
				cellSums[w] += int32(v)
			}
		}
	}
	dst.SeekForwardNCells(p.format.CellsPerGroup())
}
