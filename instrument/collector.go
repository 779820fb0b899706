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

// Package instrument provides optional, zero-cost-when-absent
// instrumentation for the containers in this repository: per-operation
// latency timers and node-count/depth gauges, both periodically
// reported through zerolog. None of it is on the critical path of a
// container operation unless a caller explicitly opts in through a
// WithInstrumentation construction option.
package instrument

import "github.com/rs/zerolog"

// Collector is anything that can report its accumulated metrics to a
// logger on demand. Time and Size both implement it.
type Collector interface {
	Output(log zerolog.Logger)
}
