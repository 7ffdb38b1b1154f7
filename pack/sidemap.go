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

// SideMap is a read-only width-major view over one operand: the element at
// (width w, depth d) lives at data[w*stride + d], so consecutive depth
// positions are contiguous in memory. Values are assumed already quantized
// to [0, 255].
//
// A SideMap does not own its backing slice; it is a cheap value type made to
// be re-sliced into blocks.
type SideMap struct {
	data   []uint8
	width  int
	depth  int
	stride int
}

// NewWidthMajorSideMap wraps data as a width x depth view with the given
// width stride. The stride may exceed depth when the view covers part of a
// wider matrix.
func NewWidthMajorSideMap(data []uint8, width, depth, stride int) SideMap {
	assertf(stride >= depth, "side map stride %d smaller than depth %d", stride, depth)
	assertf(len(data) >= (width-1)*stride+depth, "side map backing slice too short: %d", len(data))
	return SideMap{data: data, width: width, depth: depth, stride: stride}
}

// Width returns the view's extent along the width axis.
func (m SideMap) Width() int { return m.width }

// Depth returns the view's extent along the depth axis.
func (m SideMap) Depth() int { return m.depth }

// WidthStride returns the element distance between consecutive width
// positions at equal depth.
func (m SideMap) WidthStride() int { return m.stride }

// At reads the element at (width w, depth d).
func (m SideMap) At(w, d int) uint8 {
	return m.data[w*m.stride+d]
}

// Block returns the sub-view of size width x depth whose origin is at
// (wStart, dStart) in this view. The sub-view aliases the same backing
// memory.
func (m SideMap) Block(wStart, dStart, width, depth int) SideMap {
	assertf(wStart+width <= m.width, "block width range [%d, %d) exceeds view width %d", wStart, wStart+width, m.width)
	assertf(dStart+depth <= m.depth, "block depth range [%d, %d) exceeds view depth %d", dStart, dStart+depth, m.depth)
	return SideMap{
		data:   m.data[wStart*m.stride+dStart:],
		width:  width,
		depth:  depth,
		stride: m.stride,
	}
}

// depthRun returns the contiguous depth run starting at (w, 0), used by the
// wide path for whole-word loads.
func (m SideMap) depthRun(w int) []uint8 {
	return m.data[w*m.stride:]
}
