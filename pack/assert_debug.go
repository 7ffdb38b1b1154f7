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

//go:build gemmdebug

package pack

import "github.com/pkg/errors"

// assertf panics when a caller precondition is violated. Only compiled in
// with the gemmdebug build tag; release builds get the no-op in
// assert_release.go. A failing assertion is always a bug in the caller, so
// it panics rather than returning an error.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(errors.Errorf("pack: "+format, args...))
	}
}
