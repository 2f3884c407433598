package dupes

import (
	"fmt"
	"slices"
	"testing"

	"github.com/matzehuels/cargo-dupdeps/pkg/cargo"
	"github.com/matzehuels/cargo-dupdeps/pkg/errors"
)

func pkg(name string, deps ...string) cargo.Package {
	p := cargo.Package{Name: name, Version: "1.0.0", Edition: "2021"}
	for _, d := range deps {
		p.Dependencies = append(p.Dependencies, cargo.Dependency{Name: d})
	}
	return p
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		graph     *cargo.Graph
		wantRoot  []string
		wantOther []string
		wantDupes []string
	}{
		{
			name:      "root only, no deps",
			graph:     &cargo.Graph{Root: "app", Packages: []cargo.Package{pkg("app")}},
			wantRoot:  []string{},
			wantOther: []string{},
			wantDupes: []string{},
		},
		{
			name: "root without deps, others with deps",
			graph: &cargo.Graph{Root: "app", Packages: []cargo.Package{
				pkg("app"), pkg("lib", "serde"),
			}},
			wantRoot:  []string{},
			wantOther: []string{"serde"},
			wantDupes: []string{},
		},
		{
			name: "single overlap",
			graph: &cargo.Graph{Root: "app", Packages: []cargo.Package{
				pkg("app", "serde", "tokio"), pkg("serde_json", "serde"), pkg("serde"), pkg("tokio"),
			}},
			wantRoot:  []string{"serde", "tokio"},
			wantOther: []string{"serde"},
			wantDupes: []string{"serde"},
		},
		{
			name: "no overlap",
			graph: &cargo.Graph{Root: "app", Packages: []cargo.Package{
				pkg("app", "clap"), pkg("clap", "bitflags"), pkg("bitflags"),
			}},
			wantRoot:  []string{"clap"},
			wantOther: []string{"bitflags"},
			wantDupes: []string{},
		},
		{
			name: "many overlaps with repeated edges",
			graph: &cargo.Graph{Root: "app", Packages: []cargo.Package{
				pkg("a", "log", "libc"),
				pkg("app", "log", "libc", "log", "rand", "left-pad"),
				pkg("b", "libc", "rand", "left-pad"),
				pkg("c", "Log"),
			}},
			wantRoot:  []string{"left-pad", "libc", "log", "rand"},
			wantOther: []string{"Log", "left-pad", "libc", "log", "rand"},
			wantDupes: []string{"left-pad", "libc", "log", "rand"},
		},
		{
			name: "case is significant",
			graph: &cargo.Graph{Root: "app", Packages: []cargo.Package{
				pkg("app", "Serde"), pkg("lib", "serde"),
			}},
			wantRoot:  []string{"Serde"},
			wantOther: []string{"serde"},
			wantDupes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Detect(tt.graph)
			if err != nil {
				t.Fatalf("Detect: %v", err)
			}
			if res.Root.Name != tt.graph.Root {
				t.Errorf("Root = %q, want %q", res.Root.Name, tt.graph.Root)
			}
			if got := res.RootDeps.Sorted(); !slices.Equal(got, tt.wantRoot) {
				t.Errorf("RootDeps = %v, want %v", got, tt.wantRoot)
			}
			if got := res.OtherDeps.Sorted(); !slices.Equal(got, tt.wantOther) {
				t.Errorf("OtherDeps = %v, want %v", got, tt.wantOther)
			}
			if got := res.Duplicates.Sorted(); !slices.Equal(got, tt.wantDupes) {
				t.Errorf("Duplicates = %v, want %v", got, tt.wantDupes)
			}
		})
	}
}

// TestDetectIntersection checks Duplicates == RootDeps ∩ OtherDeps and that
// names only the root declares never leak into OtherDeps.
func TestDetectIntersection(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e", "f"}
	for mask := 0; mask < 1<<len(names); mask++ {
		var rootDeps, otherDeps []string
		for i, n := range names {
			if mask&(1<<i) != 0 {
				rootDeps = append(rootDeps, n)
			}
			if (mask>>1)&(1<<i) != 0 || i%3 == 0 {
				otherDeps = append(otherDeps, n)
			}
		}
		g := &cargo.Graph{Root: "root", Packages: []cargo.Package{
			pkg("root", rootDeps...),
			pkg("other", otherDeps...),
		}}

		t.Run(fmt.Sprintf("mask=%d", mask), func(t *testing.T) {
			res, err := Detect(g)
			if err != nil {
				t.Fatal(err)
			}
			for n := range res.Duplicates {
				if !res.RootDeps.Has(n) || !res.OtherDeps.Has(n) {
					t.Errorf("%q in Duplicates but not in both inputs", n)
				}
			}
			for n := range res.RootDeps {
				if res.OtherDeps.Has(n) && !res.Duplicates.Has(n) {
					t.Errorf("%q in both inputs but not in Duplicates", n)
				}
			}
			for n := range res.OtherDeps {
				if !slices.Contains(otherDeps, n) {
					t.Errorf("%q in OtherDeps but only declared by root", n)
				}
			}
		})
	}
}

func TestDetectMissingRoot(t *testing.T) {
	tests := []struct {
		name  string
		graph *cargo.Graph
	}{
		{"nil graph", nil},
		{"empty root", &cargo.Graph{Packages: []cargo.Package{pkg("lib")}}},
		{"root absent", &cargo.Graph{Root: "app", Packages: []cargo.Package{pkg("lib", "serde")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Detect(tt.graph)
			if !errors.Is(err, errors.ErrCodeRootNotFound) {
				t.Fatalf("err = %v, want %v", err, errors.ErrCodeRootNotFound)
			}
			if res != nil {
				t.Error("Detect must not return a result without a root")
			}
		})
	}
}

func TestSet(t *testing.T) {
	s := NewSet("b", "a", "b")
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Has("a") || s.Has("c") {
		t.Error("Has reports wrong membership")
	}
	if got := s.Intersect(NewSet("b", "c")).Sorted(); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Intersect = %v", got)
	}
	if got := NewSet().Intersect(s).Len(); got != 0 {
		t.Errorf("empty Intersect Len = %d", got)
	}
}
