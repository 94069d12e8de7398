package person

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Generator builds bounded Person trees. It is not safe for concurrent use;
// create one per goroutine.
type Generator struct {
	rng        *rand.Rand
	sequential bool
	n          int
}

// GenOption configures a Generator.
type GenOption func(*Generator)

// WithSeed makes generation pure: two generators with the same seed and the
// same call sequence produce structurally equal trees.
func WithSeed(seed int64) GenOption {
	return func(g *Generator) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithSequential produces incrementing names and ages and always the maximum
// child count, for tests that want a fully predictable shape.
func WithSequential() GenOption {
	return func(g *Generator) { g.sequential = true }
}

// NewGenerator returns a Generator seeded from the clock unless WithSeed is
// given.
func NewGenerator(opts ...GenOption) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// Person returns a single childless node. Random mode draws an age in [1, 99]
// and a uuid-suffixed name; sequential mode increments both.
func (g *Generator) Person() *Person {
	g.n++
	if g.sequential {
		return New(fmt.Sprintf("person-%d", g.n), g.n)
	}
	return New("person-"+uuid.NewString()[:8], g.rng.Intn(99)+1)
}

// Tree builds a tree of at most the given depth. At depth 0 the node is a
// leaf regardless of maxChildren; at depth > 0 each node gets a child count
// drawn from [0, maxChildren] (exactly maxChildren in sequential mode), each
// child built with depth-1. Depth decreases strictly on every recursive call,
// so generation always terminates. Negative arguments are treated as zero.
func (g *Generator) Tree(depth, maxChildren int) *Person {
	if depth < 0 {
		depth = 0
	}
	if maxChildren < 0 {
		maxChildren = 0
	}
	root := g.Person()
	if depth == 0 || maxChildren == 0 {
		return root
	}
	n := maxChildren
	if !g.sequential {
		n = g.rng.Intn(maxChildren + 1)
	}
	for i := 0; i < n; i++ {
		root.AddChild(g.Tree(depth-1, maxChildren))
	}
	return root
}

// Generate is the package-level convenience over NewGenerator(...).Tree.
func Generate(depth, maxChildren int, opts ...GenOption) *Person {
	return NewGenerator(opts...).Tree(depth, maxChildren)
}

// NewRandom returns a single random childless Person.
func NewRandom(opts ...GenOption) *Person {
	return NewGenerator(opts...).Person()
}
