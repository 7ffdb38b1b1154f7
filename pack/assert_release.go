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

//go:build !gemmdebug

package pack

// assertf compiles to nothing in release builds so the hot path stays free
// of bounds checks. Build with -tags gemmdebug to enable.
func assertf(cond bool, format string, args ...any) {}
