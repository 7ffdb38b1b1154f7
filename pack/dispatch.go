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

import (
	"os"

	"k8s.io/klog/v2"
)

// DispatchLevel identifies which packing implementation class NewPacker
// selects for eligible configurations.
type DispatchLevel int

const (
	// DispatchScalar packs element by element with the reference loops.
	DispatchScalar DispatchLevel = iota
	// DispatchWide moves whole 64-bit depth runs per width position. Only
	// eligible for 4x2 cells at BitDepth8, where requantization is the
	// identity and consumes no rounding tokens.
	DispatchWide
)

var (
	currentLevel DispatchLevel
	currentName  string
)

// CurrentLevel returns the dispatch level chosen at init.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentName returns a human-readable name for the chosen dispatch path,
// for diagnostics and test logs.
func CurrentName() string { return currentName }

// NoFastPathEnv reports whether GEMMLOWP_NO_FASTPATH is set (to anything but
// "0" or ""), forcing the scalar reference path everywhere.
func NoFastPathEnv() bool {
	v := os.Getenv("GEMMLOWP_NO_FASTPATH")
	return v != "" && v != "0"
}

func setScalarMode(reason string) {
	currentLevel = DispatchScalar
	currentName = "scalar"
	klog.V(2).Infof("gemmlowp pack dispatch: scalar (%s)", reason)
}

func setWideMode(name string) {
	currentLevel = DispatchWide
	currentName = name
	klog.V(2).Infof("gemmlowp pack dispatch: wide (%s)", name)
}
