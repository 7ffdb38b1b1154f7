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

func TestKernelSideFormatDerivedSizes(t *testing.T) {
	f := KernelSideFormatNCells4x2(3)
	if got := f.Cell.Size(); got != 8 {
		t.Errorf("Cell.Size() = %d, want 8", got)
	}
	if got := f.KernelWidth(); got != 12 {
		t.Errorf("KernelWidth() = %d, want 12", got)
	}
	// 3 cells * 8 rows / depth 2 = 12 cells per register group.
	if got := f.CellsPerGroup(); got != 12 {
		t.Errorf("CellsPerGroup() = %d, want 12", got)
	}
	if got := f.GroupBytes(); got != 96 {
		t.Errorf("GroupBytes() = %d, want 96", got)
	}
}

func TestKernelSideFormatValidate(t *testing.T) {
	good := KernelSideFormatNCells4x2(1)
	if err := good.Validate(); err != nil {
		t.Fatalf("valid format rejected: %v", err)
	}
	bad := []KernelSideFormat{
		{Cell: CellFormat{Width: 0, Depth: 2}, Cells: 1},
		{Cell: CellFormat{Width: 4, Depth: 0}, Cells: 1},
		{Cell: CellFormat{Width: 4, Depth: 2}, Cells: 0},
		// depth 3 does not divide the register size of 8
		{Cell: CellFormat{Width: 4, Depth: 3}, Cells: 2},
	}
	for _, f := range bad {
		if err := f.Validate(); err == nil {
			t.Errorf("format %+v passed validation, want error", f)
		}
	}
	// depth 1, 2, 4, 8 all divide the register size
	for _, d := range []int{1, 2, 4, 8} {
		f := KernelSideFormat{Cell: CellFormat{Width: 4, Depth: d}, Cells: 2}
		if err := f.Validate(); err != nil {
			t.Errorf("format with cell depth %d rejected: %v", d, err)
		}
	}
}

func TestBitDepthValidate(t *testing.T) {
	for d := BitDepth1; d <= BitDepth8; d++ {
		if err := d.Validate(); err != nil {
			t.Errorf("BitDepth(%d).Validate() = %v", d, err)
		}
	}
	for _, d := range []BitDepth{0, 9, -1} {
		if err := d.Validate(); err == nil {
			t.Errorf("BitDepth(%d) passed validation, want error", d)
		}
	}
	if got := BitDepth4.MaxValue(); got != 15 {
		t.Errorf("BitDepth4.MaxValue() = %d, want 15", got)
	}
	if got := BitDepth8.MaxValue(); got != 255 {
		t.Errorf("BitDepth8.MaxValue() = %d, want 255", got)
	}
}
