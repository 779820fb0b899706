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

package instrument

import (
	"sync"
	"time"

	metrics "github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"
)

// Time tracks per-operation latency timers, keyed by operation name
// (e.g. "get", "set", "remove"). A zero value is not usable; construct
// one with NewTime.
type Time struct {
	mutex  sync.Mutex
	title  string
	timers map[string]metrics.Timer
}

// NewTime creates a latency collector identified by title, used when
// logging its totals.
func NewTime(title string) *Time {
	return &Time{
		title:  title,
		timers: make(map[string]metrics.Timer),
	}
}

// Duration starts a timer for the named operation and returns a stop
// function; call it when the operation completes.
//
//	defer t.Duration("get")()
func (t *Time) Duration(name string) func() {
	t.mutex.Lock()
	timer, ok := t.timers[name]
	if !ok {
		timer = metrics.NewTimer()
		t.timers[name] = timer
	}
	t.mutex.Unlock()

	start := time.Now()
	return func() {
		timer.UpdateSince(start)
	}
}

// Output logs the accumulated totals and per-operation breakdown.
func (t *Time) Output(log zerolog.Logger) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	log = log.With().Str("title", t.title).Logger()

	total := time.Duration(0)
	for _, timer := range t.timers {
		total += time.Duration(timer.Sum())
	}

	log.Info().Str("duration_total", total.String()).Msg("time metrics for all operations")

	for name, timer := range t.timers {
		duration := time.Duration(timer.Sum())
		var percentage float64
		if total > 0 {
			percentage = float64(duration) / float64(total)
		}
		log.Info().
			Str("name", name).
			Int64("count", timer.Count()).
			Str("duration", duration.String()).
			Float64("duration_percentage", percentage).
			Msg("time metrics for one operation")
	}
}
