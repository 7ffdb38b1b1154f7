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

// RegisterSize is the number of depth rows one PackBlock call processes.
// It matches the 64-bit lane group the optimized path moves at once; source
// blocks must be depth-aligned to it.
const RegisterSize = 8

// CellFormat is the shape of the smallest destination tile. Cells are
// width-major: within one cell the byte for (width w, depth d) sits at
// offset w*Depth + d.
type CellFormat struct {
	Width int
	Depth int
}

// Size returns the number of bytes in one cell.
func (c CellFormat) Size() int { return c.Width * c.Depth }

// KernelSideFormat describes the tiling of one operand side: Cells cells of
// shape Cell laid side by side cover one kernel-width slice of the operand.
type KernelSideFormat struct {
	Cell  CellFormat
	Cells int
}

// KernelWidth returns the number of source columns one kernel slice spans.
func (f KernelSideFormat) KernelWidth() int { return f.Cell.Width * f.Cells }

// CellsPerGroup returns how many cells one PackBlock call emits.
func (f KernelSideFormat) CellsPerGroup() int {
	return f.Cells * RegisterSize / f.Cell.Depth
}

// GroupBytes returns how many destination bytes one PackBlock call emits.
func (f KernelSideFormat) GroupBytes() int {
	return f.KernelWidth() * RegisterSize
}

// Validate checks the geometry constraints the transform assumes. The cell
// depth must divide RegisterSize so a register group splits into whole depth
// slices.
func (f KernelSideFormat) Validate() error {
	if f.Cell.Width < 1 || f.Cell.Depth < 1 {
		return errors.Errorf("pack: cell format %dx%d has non-positive dimension", f.Cell.Width, f.Cell.Depth)
	}
	if f.Cells < 1 {
		return errors.Errorf("pack: cell count %d must be at least 1", f.Cells)
	}
	if RegisterSize%f.Cell.Depth != 0 {
		return errors.Errorf("pack: cell depth %d does not divide register size %d", f.Cell.Depth, RegisterSize)
	}
	return nil
}

// KernelSideFormatNCells4x2 returns the reference 4x2 width-major geometry
// with the given number of cells per kernel slice. This is the shape the
// optimized path specializes for.
func KernelSideFormatNCells4x2(cells int) KernelSideFormat {
	return KernelSideFormat{Cell: CellFormat{Width: 4, Depth: 2}, Cells: cells}
}
