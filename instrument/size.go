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

	metrics "github.com/rcrowley/go-metrics"
	"github.com/rs/zerolog"
)

// Size tracks node-count and depth gauges for a container, keyed by
// name (e.g. "entries", "depth", "evictions").
type Size struct {
	mutex   sync.Mutex
	title   string
	gauges  map[string]metrics.Gauge
}

// NewSize creates a gauge collector identified by title.
func NewSize(title string) *Size {
	return &Size{
		title:  title,
		gauges: make(map[string]metrics.Gauge),
	}
}

// Set records the current value of the named gauge.
func (s *Size) Set(name string, value int64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	gauge, ok := s.gauges[name]
	if !ok {
		gauge = metrics.NewGauge()
		s.gauges[name] = gauge
	}
	gauge.Update(value)
}

// Output logs the current value of every gauge.
func (s *Size) Output(log zerolog.Logger) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	log = log.With().Str("title", s.title).Logger()
	for name, gauge := range s.gauges {
		log.Info().
			Str("name", name).
			Int64("value", gauge.Value()).
			Msg("size metrics for one gauge")
	}
}
