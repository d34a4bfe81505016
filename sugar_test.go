// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"code.hybscloud.com/shape"
)

func TestSuchThat(t *testing.T) {
	st := shape.SuchThat(evenPred, Positive)
	if st.Kind() != shape.KindIntersection {
		t.Fatalf("got kind %v, want intersection", st.Kind())
	}
	if !st.Equal(shape.Intersection(Even, Positive)) {
		t.Fatal("SuchThat(p, T) != Intersection(Predicate(p), T)")
	}
	if !st.Has(2) || st.Has(-2) || st.Has(3) {
		t.Fatal("SuchThat membership is wrong")
	}
	if !shape.Supersedes(Positive, st) {
		t.Fatal("parent does not supersede its refinement")
	}
}

func TestAlias(t *testing.T) {
	ep := shape.Intersection(Even, Positive)
	foo := shape.Alias("Foo", ep)

	if diff := cmp.Diff([]string{"Foo", "(Even ∩ Positive)"}, foo.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if foo.Name() != "Foo" || foo.CanonicalName() != "(Even ∩ Positive)" {
		t.Fatalf("got name %q canonical %q", foo.Name(), foo.CanonicalName())
	}
	if foo.Kind() != ep.Kind() {
		t.Fatal("alias changed the kind")
	}
	for v := -6; v <= 6; v++ {
		if foo.Has(v) != ep.Has(v) {
			t.Fatalf("alias changed membership of %d", v)
		}
	}
	if !foo.Equal(ep) || !ep.Equal(foo) {
		t.Fatal("alias is not equal to its parent")
	}
	if !shape.Supersedes(ep, foo) || !shape.Supersedes(foo, ep) {
		t.Fatal("alias changed subsumption")
	}
	if !shape.Supersedes(Even, foo) {
		t.Fatal("alias hides the lattice edges of its parent")
	}
	if ep.Name() != "(Even ∩ Positive)" {
		t.Fatal("alias modified its parent")
	}
}

func TestAliasAppearsInComposites(t *testing.T) {
	evens := shape.Alias("Evens", Even)
	u := shape.Union(Positive, evens)
	// Display names come from aliases, order from canonical names.
	if u.Name() != "(Evens ∪ Positive)" {
		t.Fatalf("got %q, want %q", u.Name(), "(Evens ∪ Positive)")
	}
	if !u.Equal(shape.Union(Even, Positive)) {
		t.Fatal("aliased operand changed equality")
	}
}

func TestUnalias(t *testing.T) {
	foo := shape.Alias("Bar", shape.Alias("Foo", Even))
	bar := shape.Unalias(foo)
	if diff := cmp.Diff([]string{"Foo", "Even"}, bar.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	base := shape.Unalias(shape.Unalias(bar))
	if diff := cmp.Diff([]string{"Even"}, base.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if shape.Unalias(Even) != Even {
		t.Fatal("Unalias of an unaliased type is not a no-op")
	}
	if !bar.Equal(Even) {
		t.Fatal("unalias changed equality")
	}
}

func TestDoc(t *testing.T) {
	d := shape.Doc(Even, "https://example.com/even", "https://example.com/parity")
	if diff := cmp.Diff([]string{"https://example.com/even", "https://example.com/parity"}, d.Docs()); diff != "" {
		t.Fatalf("docs mismatch (-want +got):\n%s", diff)
	}
	if d.Name() != "Even" || !d.Equal(Even) || !d.Has(2) {
		t.Fatal("doc changed more than the docs")
	}
	if shape.Doc(Even) != Even {
		t.Fatal("Doc without references is not a no-op")
	}
	if Even.Docs()[0] == "https://example.com/even" {
		t.Fatal("doc modified its parent")
	}
}
