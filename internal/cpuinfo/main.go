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

// Package main is a diagnostic tool that prints the CPU features the packing
// dispatch consults and which path it selected.
package main

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/FaceGen/gemmlowp/pack"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("Pack dispatch level: %d\n", pack.CurrentLevel())
	fmt.Printf("Pack dispatch name: %s\n", pack.CurrentName())
	fmt.Printf("GEMMLOWP_NO_FASTPATH: %q\n", os.Getenv("GEMMLOWP_NO_FASTPATH"))
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:      %v\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasSVE:     %v\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasSVE2:    %v\n", cpu.ARM64.HasSVE2)
	fmt.Printf("  HasATOMICS: %v\n", cpu.ARM64.HasATOMICS)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:   %v (class of the original packing kernel)\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasSSE42:   %v\n", cpu.X86.HasSSE42)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
}
