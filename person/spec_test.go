package person_test

import (
	"strings"
	"testing"

	"github.com/reoring/kintree/person"
)

func TestLoadGenSpec(t *testing.T) {
	s, err := person.LoadGenSpec([]byte("depth: 3\nmax_children: 2\nseed: 42\nsequential: true\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Depth != 3 || s.MaxChildren != 2 || s.Seed != 42 || !s.Sequential {
		t.Fatalf("unexpected spec: %+v", s)
	}

	p := s.Generate()
	if p.Count() != 15 {
		t.Fatalf("sequential depth 3 with 2 children per node: expected 15 nodes, got %d", p.Count())
	}
}

func TestLoadGenSpec_RejectsNegative(t *testing.T) {
	if _, err := person.LoadGenSpec([]byte("depth: -1\n")); err == nil {
		t.Fatalf("expected error for negative depth")
	}
	if _, err := person.LoadGenSpec([]byte("max_children: -2\n")); err == nil {
		t.Fatalf("expected error for negative max_children")
	}
}

func TestLoadGenSpec_BadYAML(t *testing.T) {
	if _, err := person.LoadGenSpec([]byte("depth: [oops\n")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestReadGenSpec(t *testing.T) {
	s, err := person.ReadGenSpec(strings.NewReader("depth: 1\nmax_children: 1\nseed: 9\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if s.Depth != 1 || s.Seed != 9 {
		t.Fatalf("unexpected spec: %+v", s)
	}
}
