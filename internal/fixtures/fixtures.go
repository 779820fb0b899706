// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

// Package fixtures holds seeded random-data generators shared by the
// container test suites, in the same spirit as the teacher's
// testing/mocks generic fixtures but scoped to internal since these
// are test helpers, not part of the public API.
package fixtures

import (
	"fmt"
	"math/rand"
)

// GenericSeed is the default seed used across the fuzz-style test
// suites, chosen arbitrarily but kept fixed so a failing run is
// reproducible.
const GenericSeed = int64(1337)

// RandomKeys returns n pseudo-random non-negative int64 keys drawn
// from r.
func RandomKeys(r *rand.Rand, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = r.Int63()
	}
	return out
}

// RandomString returns a pseudo-random lowercase string of length n.
func RandomString(r *rand.Rand, n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

// Labeled returns a deterministic label for index i, e.g. "data 7",
// matching the S1-S3 scenario naming convention.
func Labeled(prefix string, i int) string {
	return fmt.Sprintf("%s %d", prefix, i)
}
