package person_test

import (
	"strings"
	"testing"

	"github.com/reoring/kintree/person"
)

func TestGenerate_DepthZeroIsLeaf(t *testing.T) {
	for _, maxChildren := range []int{0, 1, 5, 100} {
		p := person.Generate(0, maxChildren, person.WithSeed(1))
		if len(p.Children) != 0 {
			t.Fatalf("depth 0 with maxChildren=%d should be a leaf, got %d children", maxChildren, len(p.Children))
		}
	}
}

func TestGenerate_Bounds(t *testing.T) {
	const depth, maxChildren = 4, 3
	p := person.Generate(depth, maxChildren, person.WithSeed(7))

	if d := p.Depth(); d > depth {
		t.Fatalf("depth %d exceeds bound %d", d, depth)
	}
	var walk func(p *person.Person)
	walk = func(p *person.Person) {
		if len(p.Children) > maxChildren {
			t.Fatalf("node %q has %d children, bound is %d", p.Name, len(p.Children), maxChildren)
		}
		if p.Age < 1 || p.Age > 99 {
			t.Fatalf("node %q has age %d outside [1, 99]", p.Name, p.Age)
		}
		if !strings.HasPrefix(p.Name, "person-") {
			t.Fatalf("unexpected name %q", p.Name)
		}
		for _, c := range p.Children {
			walk(c)
		}
	}
	walk(p)
}

func TestGenerate_Deterministic(t *testing.T) {
	a := person.Generate(5, 2, person.WithSeed(42))
	b := person.Generate(5, 2, person.WithSeed(42))
	if !a.Equal(b) {
		t.Fatalf("same seed should produce equal trees")
	}
}

func TestGenerate_Sequential(t *testing.T) {
	p := person.Generate(2, 2, person.WithSequential())
	// Sequential mode always takes the maximum child count.
	if len(p.Children) != 2 {
		t.Fatalf("expected exactly 2 children, got %d", len(p.Children))
	}
	if n := p.Count(); n != 7 {
		t.Fatalf("depth 2, 2 children per node: expected 7 nodes, got %d", n)
	}
	if p.Name != "person-1" || p.Age != 1 {
		t.Fatalf("sequential root should be person-1/1, got %s/%d", p.Name, p.Age)
	}
}

func TestGenerate_CountCap(t *testing.T) {
	p := person.Generate(3, 2, person.WithSeed(5))
	// 1 + 2 + 4 + 8 nodes at most.
	if n := p.Count(); n > 15 {
		t.Fatalf("node count %d exceeds cap 15", n)
	}
}

func TestGenerate_NegativeArgsClamp(t *testing.T) {
	p := person.Generate(-3, -2, person.WithSeed(1))
	if len(p.Children) != 0 {
		t.Fatalf("negative bounds should clamp to a leaf")
	}
}

func TestNewRandom(t *testing.T) {
	p := person.NewRandom(person.WithSeed(8))
	if len(p.Children) != 0 {
		t.Fatalf("NewRandom should return a leaf")
	}
	if p.Age < 1 || p.Age > 99 {
		t.Fatalf("age %d outside [1, 99]", p.Age)
	}
}
