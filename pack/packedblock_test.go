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

func TestNewPackedSideBlockValidation(t *testing.T) {
	f := KernelSideFormatNCells4x2(3) // kernel width 12

	if _, err := NewPackedSideBlock(f, 24, 16); err != nil {
		t.Fatalf("valid dimensions rejected: %v", err)
	}
	cases := []struct {
		name         string
		width, depth int
	}{
		{"width not multiple of kernel width", 10, 16},
		{"depth not multiple of register size", 24, 12},
		{"zero width", 0, 16},
		{"zero depth", 24, 0},
	}
	for _, tc := range cases {
		if _, err := NewPackedSideBlock(f, tc.width, tc.depth); err == nil {
			t.Errorf("%s (%dx%d): want error", tc.name, tc.width, tc.depth)
		}
	}

	badFormat := KernelSideFormat{Cell: CellFormat{Width: 4, Depth: 3}, Cells: 1}
	if _, err := NewPackedSideBlock(badFormat, 4, 8); err == nil {
		t.Error("invalid format accepted by NewPackedSideBlock")
	}
}

func TestPackedSideBlockCursor(t *testing.T) {
	f := KernelSideFormatNCells4x2(2)
	b, err := NewPackedSideBlock(f, 8, 16)
	if err != nil {
		t.Fatal(err)
	}
	if b.Pos() != 0 {
		t.Fatalf("fresh block cursor at %d", b.Pos())
	}
	b.SeekForwardNCells(3)
	if got, want := b.Pos(), 3*f.Cell.Size(); got != want {
		t.Errorf("cursor at %d after 3 cells, want %d", got, want)
	}
	if got := len(b.CurrentData()); got != len(b.Data())-b.Pos() {
		t.Errorf("CurrentData length %d, want %d", got, len(b.Data())-b.Pos())
	}
}

func TestPackedSideBlockAllocation(t *testing.T) {
	f := KernelSideFormatNCells4x2(3)
	b, err := NewPackedSideBlock(f, 24, 32)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(b.Data()); got != 24*32 {
		t.Errorf("data size %d, want %d", got, 24*32)
	}
	if got := len(b.SumsOfEachSlice()); got != 24 {
		t.Errorf("sums size %d, want 24", got)
	}
	for i, s := range b.SumsOfEachSlice() {
		if s != 0 {
			t.Fatalf("sums[%d] = %d, want zero-initialized", i, s)
		}
	}
}

func TestPackedSideBlockReset(t *testing.T) {
	f := KernelSideFormatNCells4x2(1)
	b, err := NewPackedSideBlock(f, 4, 8)
	if err != nil {
		t.Fatal(err)
	}
	b.SeekForwardNCells(2)
	b.SumsOfEachSlice()[1] = 99
	b.Reset()
	if b.Pos() != 0 {
		t.Errorf("cursor at %d after Reset", b.Pos())
	}
	if got := b.SumsOfEachSlice()[1]; got != 0 {
		t.Errorf("sums[1] = %d after Reset, want 0", got)
	}
}
