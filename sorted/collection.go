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

// Package sorted implements an order-statistic B-tree: a
// SortedCollection that keeps values in comparator order through
// top-down preemptive-split insertion and rotate/merge rebalancing on
// removal. It is the C3 engine of the container library; SortedMap
// (package sortedmap) and LruCache (package lru) are both built on top
// of it.
package sorted

import (
	"github.com/hashicorp/go-multierror"

	"github.com/optakt/containers/instrument"
	"github.com/optakt/containers/internal/params"
)

const defaultMaxItemsPerLevel = 64

// OrderComparer reports the relative order of a and b: negative if a
// sorts before b, zero if they are order-equivalent, positive if a
// sorts after b. Order-equivalent values are not necessarily equal;
// EqualityComparer decides that.
type OrderComparer func(a, b interface{}) int

// EqualityComparer reports whether a and b are the same value, among
// values that OrderComparer treats as order-equivalent. The default
// equality comparer is Go's == operator.
type EqualityComparer func(a, b interface{}) bool

type configValues struct {
	MaxItemsPerLevel int `validate:"required,min=4,even"`
}

// Collection is an order-statistic B-tree of arbitrary comparable
// values, with duplicate values permitted (equality is a strictly
// narrower relation than the ordering).
type Collection struct {
	root     *node
	count    int
	orderCmp OrderComparer
	equalCmp EqualityComparer
	maxItems int
	minItems int
	pool     *Pool
	metrics  *instrument.Time
}

// Option configures a Collection at construction.
type Option func(*configValues, *Collection)

// WithMaxItemsPerLevel overrides the default branching factor. The
// value must be even and at least 4; New panics if it is not, since a
// malformed branching factor can never produce a usable tree.
func WithMaxItemsPerLevel(n int) Option {
	return func(cfg *configValues, c *Collection) {
		cfg.MaxItemsPerLevel = n
	}
}

// WithEqualityComparer overrides the default == based equality
// comparer, for value types (e.g. pointers meant to compare by
// contents) where == is not the intended notion of equality.
func WithEqualityComparer(eq EqualityComparer) Option {
	return func(_ *configValues, c *Collection) {
		c.equalCmp = eq
	}
}

// WithPool enables node pooling.
func WithPool(pool *Pool) Option {
	return func(_ *configValues, c *Collection) {
		c.pool = pool
	}
}

// WithInstrumentation attaches a latency collector.
func WithInstrumentation(collector *instrument.Time) Option {
	return func(_ *configValues, c *Collection) {
		c.metrics = collector
	}
}

// New creates an empty Collection ordered by cmp.
func New(cmp OrderComparer, opts ...Option) *Collection {
	cfg := configValues{MaxItemsPerLevel: defaultMaxItemsPerLevel}
	c := &Collection{
		orderCmp: cmp,
		equalCmp: func(a, b interface{}) bool { return a == b },
	}
	for _, opt := range opts {
		opt(&cfg, c)
	}
	if err := params.Check(cfg); err != nil {
		panic(err)
	}
	c.maxItems = cfg.MaxItemsPerLevel
	c.minItems = cfg.MaxItemsPerLevel / 2
	c.root = c.newNode()
	c.root.isRoot = true
	return c
}

func (c *Collection) newNode() *node {
	if c.pool != nil {
		return c.pool.GetNode()
	}
	return newNode()
}

// Size returns the number of values in the collection.
func (c *Collection) Size() int {
	return c.count
}

// Depth returns the number of node levels from the root to a leaf. An
// empty collection has depth 1 (the empty root leaf).
func (c *Collection) Depth() int {
	depth := 0
	n := c.root
	for {
		depth++
		if n.isLeaf() {
			return depth
		}
		n = n.children[0]
	}
}

func (c *Collection) occupancy(n *node) int {
	if n.isLeaf() {
		return len(n.values)
	}
	return len(n.children)
}

// GetFirst returns the smallest value in the collection.
func (c *Collection) GetFirst() (interface{}, bool) {
	n := c.root
	for !n.isLeaf() {
		n = n.children[0]
	}
	if len(n.values) == 0 {
		return nil, false
	}
	return n.values[0], true
}

// GetLast returns the largest value in the collection.
func (c *Collection) GetLast() (interface{}, bool) {
	n := c.root
	for !n.isLeaf() {
		n = n.children[len(n.children)-1]
	}
	if len(n.values) == 0 {
		return nil, false
	}
	return n.values[len(n.values)-1], true
}

// Has reports whether a value order-equivalent and equal to value is
// present.
func (c *Collection) Has(value interface{}) bool {
	_, ok := c.findInNode(c.root, value, nil)
	return ok
}

// LoadAll inserts every value in values. A value whose OrderComparer
// call panics (e.g. a comparator that type-asserts its arguments, fed
// a value of the wrong type) is skipped and its error collected rather
// than aborting the whole batch.
func (c *Collection) LoadAll(values []interface{}) (err error) {
	var result *multierror.Error
	for _, v := range values {
		if insertErr := c.insertSafe(v); insertErr != nil {
			result = multierror.Append(result, insertErr)
		}
	}
	return result.ErrorOrNil()
}

func (c *Collection) insertSafe(value interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverErr(r)
		}
	}()
	c.Insert(value)
	return nil
}

func (c *Collection) observe(op string) func() {
	if c.metrics == nil {
		return func() {}
	}
	return c.metrics.Duration(op)
}
