package triemap

import "sync"

// Pool recycles trie nodes across Map operations, the same way the
// teacher's ledger/trie.Pool recycles branch/leaf/extension nodes: a
// single sync.Pool per node type, pre-warmed with a number of blank
// instances.
type Pool struct {
	nodes *sync.Pool
}

// NewPool creates a node pool, pre-allocating number blank nodes.
func NewPool(number int) *Pool {
	nodes := &sync.Pool{
		New: func() interface{} {
			return newNode()
		},
	}
	for i := 0; i < number; i++ {
		nodes.Put(nodes.New())
	}
	return &Pool{nodes: nodes}
}

// GetNode returns a blank node, either recycled or freshly allocated.
func (p *Pool) GetNode() *node {
	n := p.nodes.Get().(*node)
	n.reset()
	return n
}

// PutNode returns a node to the pool for future reuse. Map never calls
// this itself today (nodes are never collapsed on removal, per the
// hash-trie's design), but it is exposed for callers that discard a Map
// wholesale and want to recycle its nodes into a fresh one.
func (p *Pool) PutNode(n *node) {
	p.nodes.Put(n)
}
