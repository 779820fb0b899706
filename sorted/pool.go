package sorted

import "sync"

// Pool recycles B-tree nodes the same way triemap.Pool recycles trie
// nodes, mirroring the teacher's single-sync.Pool-per-node-type idiom.
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

// PutNode returns a node to the pool. Collection never calls this
// itself (merged-away nodes are simply dropped), but it is exposed for
// callers that discard a Collection wholesale.
func (p *Pool) PutNode(n *node) {
	p.nodes.Put(n)
}
