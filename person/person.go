// Package person provides the opaque recursive entity the rest of the module
// treats as a black box: a finite, acyclic, rooted tree of Person nodes with
// ordered, parent-owned children.
package person

import (
	"fmt"
	"strings"
)

// Person is a tree node. Children are owned exclusively by the parent: there
// is no back-reference and no sharing between siblings. Age is mutable after
// construction; the whole tree is discarded as a unit, nodes are never
// removed individually.
type Person struct {
	Name     string
	Age      int
	Children []*Person
}

// New returns a childless Person.
func New(name string, age int) *Person {
	return &Person{Name: name, Age: age}
}

// AddChild appends c to the ordered child sequence.
func (p *Person) AddChild(c *Person) {
	p.Children = append(p.Children, c)
}

// Equal reports structural equality: name, age, and recursively-equal
// children in order. Two nil trees are equal.
func (p *Person) Equal(o *Person) bool {
	if p == nil || o == nil {
		return p == nil && o == nil
	}
	if p.Name != o.Name || p.Age != o.Age || len(p.Children) != len(o.Children) {
		return false
	}
	for i := range p.Children {
		if !p.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy; mutations on the copy never reach the original.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	out := &Person{Name: p.Name, Age: p.Age}
	if len(p.Children) > 0 {
		out.Children = make([]*Person, len(p.Children))
		for i, c := range p.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Depth returns the number of edges on the longest root-to-leaf path.
// A single node has depth 0.
func (p *Person) Depth() int {
	if p == nil {
		return 0
	}
	max := -1
	for _, c := range p.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// Count returns the total number of nodes in the tree rooted at p.
func (p *Person) Count() int {
	if p == nil {
		return 0
	}
	n := 1
	for _, c := range p.Children {
		n += c.Count()
	}
	return n
}

// String renders the node and its subtree.
func (p *Person) String() string {
	if p == nil {
		return "Person(nil)"
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "Person(name=%s, age=%d, children=[", p.Name, p.Age)
	for i, c := range p.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteString("])")
	return b.String()
}
