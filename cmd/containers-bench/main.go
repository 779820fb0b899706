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

// Command containers-bench drives a synthetic mixed workload against
// the SortedMap and LruCache engines and reports latency and size
// metrics through package instrument.
package main

import (
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/containers/instrument"
	"github.com/optakt/containers/lru"
	"github.com/optakt/containers/sortedmap"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	var (
		flagLevel      string
		flagOperations uint
		flagCacheSize  int
		flagSeed       int64
		flagInterval   time.Duration
	)

	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.UintVarP(&flagOperations, "operations", "n", 200_000, "number of mixed get/set/remove operations to run")
	pflag.IntVarP(&flagCacheSize, "cache-size", "c", 1024, "suggested size for the LRU cache under test")
	pflag.Int64VarP(&flagSeed, "seed", "s", 1337, "seed for the pseudo-random workload generator")
	pflag.DurationVarP(&flagInterval, "report-interval", "i", 5*time.Second, "interval between metrics reports")

	pflag.Parse()

	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	mapTimers := instrument.NewTime("sortedmap")
	mapSizes := instrument.NewSize("sortedmap")
	cacheTimers := instrument.NewTime("lru")
	cacheSizes := instrument.NewSize("lru")

	reporter := instrument.NewOutput(log, flagInterval)
	reporter.Register(mapTimers)
	reporter.Register(mapSizes)
	reporter.Register(cacheTimers)
	reporter.Register(cacheSizes)
	reporter.Run()
	defer reporter.Stop()

	m := sortedmap.New(
		func(v interface{}) interface{} { return v.(int64) },
		sortedmap.WithInstrumentation(mapTimers),
	)
	c := lru.New(flagCacheSize, lru.WithInstrumentation(cacheTimers))

	log.Info().
		Uint("operations", flagOperations).
		Int("cache_size", flagCacheSize).
		Int64("seed", flagSeed).
		Msg("starting mixed workload")

	workload(m, c, flagOperations, flagSeed, sig)

	mapSizes.Set("entries", int64(m.Size()))
	cacheSizes.Set("entries", int64(c.Size()))

	log.Info().
		Int("sortedmap_entries", m.Size()).
		Int("lru_entries", c.Size()).
		Msg("workload complete")

	return success
}

// workload runs a mixed stream of sets, gets and removes against both
// containers until count operations have run or sig fires.
func workload(m *sortedmap.Map, c *lru.Cache, count uint, seed int64, sig <-chan os.Signal) {
	r := rand.New(rand.NewSource(seed))
	for i := uint(0); i < count; i++ {
		select {
		case <-sig:
			return
		default:
		}

		key := r.Int63n(int64(count))
		switch r.Intn(10) {
		case 0, 1:
			m.Remove(key)
			c.Remove(key)
		case 2, 3, 4:
			m.Get(key)
			c.Get(key)
		default:
			m.Set(key, key)
			c.Set(key, key)
		}
	}
}
