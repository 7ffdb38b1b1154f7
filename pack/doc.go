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

// Package pack converts one operand of a quantized (8-bit-and-below) matrix
// multiplication from its natural strided layout into the cell-tiled layout a
// low-precision GEMM kernel consumes.
//
// A single pass over each source block fuses three things:
//
//   - layout transposition into fixed-size cells (see KernelSideFormat),
//   - requantization of each 8-bit value down to 1..8 bits with an externally
//     supplied rounding offset (see Requantize),
//   - accumulation of per-destination-column int32 sums, which the caller
//     later uses for zero-point correction of the quantized product.
//
// # Core Types
//
//   - SideMap: read-only width-major strided view over the source operand
//   - PackedSideBlock: destination bytes + column sums + forward-only cursor
//   - Packer: construction-time configuration (geometry + bit depth) with
//     PackBlock (one register group) and PackSide (whole operand)
//   - RoundingOffsetGenerator: sequential source of rounding offsets
//
// # Layout Contract
//
// For one register group (RegisterSize depth rows), the cell holding cell
// position c and depth slice group g starts at byte (g*Cells + c) * CellSize
// from the cursor. Within a cell, the byte for (width w, depth d) is at
// w*CellDepth + d. This ordering is what the downstream multiply kernel
// expects and is fixed, not negotiated at runtime.
//
// # Example Usage
//
//	format := pack.KernelSideFormatNCells4x2(3)
//	packer, _ := pack.NewPacker(format, pack.BitDepth8)
//	dst, _ := pack.NewPackedSideBlock(format, width, depth)
//	src := pack.NewWidthMajorSideMap(data, width, depth, stride)
//	packer.PackSide(dst, src, pack.NewNearestRoundingOffsetGenerator())
//
// The transform is allocation-free and performs no bounds checking on the hot
// path; callers own buffer sizing and block alignment. Build with the
// gemmdebug tag to enable precondition assertions during development.
package pack
