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

	"github.com/rs/zerolog"
)

// Output periodically logs every registered Collector's metrics.
type Output struct {
	log        zerolog.Logger
	interval   time.Duration
	collectors []Collector
	done       chan struct{}
	wg         sync.WaitGroup
}

// NewOutput creates a reporter that logs every interval.
func NewOutput(log zerolog.Logger, interval time.Duration) *Output {
	return &Output{
		log:      log.With().Str("component", "instrument").Logger(),
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Register adds a collector to the set reported on each tick.
func (o *Output) Register(collector Collector) {
	o.collectors = append(o.collectors, collector)
}

// Run starts the periodic reporting loop in a background goroutine.
func (o *Output) Run() {
	o.wg.Add(1)
	go o.loop()
}

// Stop ends the reporting loop and blocks until it has exited, logging
// one final snapshot first.
func (o *Output) Stop() {
	close(o.done)
	o.wg.Wait()
}

func (o *Output) loop() {
	defer o.wg.Done()
	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()
	for {
		select {
		case <-o.done:
			o.print()
			return
		case <-ticker.C:
			o.print()
		}
	}
}

func (o *Output) print() {
	for _, collector := range o.collectors {
		collector.Output(o.log)
	}
}
