package equihash

import "testing"

func TestNewHashStateDeterministic(t *testing.T) {
	p, err := NewParams(96, 5)
	if err != nil {
		t.Fatal(err)
	}
	a := NewHashState(p)
	b := NewHashState(p)

	ha, err := a.leaf(7)
	if err != nil {
		t.Fatal(err)
	}
	hb, err := b.leaf(7)
	if err != nil {
		t.Fatal(err)
	}
	if len(ha) != int(p.HashByteLength()) {
		t.Fatalf("expected %d bytes, got %d", p.HashByteLength(), len(ha))
	}
	if string(ha) != string(hb) {
		t.Fatal("two fresh states with no absorbed prefix should derive identical leaves")
	}
}

func TestLeafDependsOnIndex(t *testing.T) {
	p, err := NewParams(96, 5)
	if err != nil {
		t.Fatal(err)
	}
	s := NewHashState(p)
	h0, err := s.leaf(0)
	if err != nil {
		t.Fatal(err)
	}
	h1, err := s.leaf(1)
	if err != nil {
		t.Fatal(err)
	}
	if string(h0) == string(h1) {
		t.Fatal("leaves for distinct indices should not collide in practice")
	}
}

func TestWriteAbsorbsPrefix(t *testing.T) {
	p, err := NewParams(96, 5)
	if err != nil {
		t.Fatal(err)
	}
	plain := NewHashState(p)
	withHeader := NewHashState(p)
	if _, err := withHeader.Write([]byte("block-header")); err != nil {
		t.Fatal(err)
	}

	h0, err := plain.leaf(3)
	if err != nil {
		t.Fatal(err)
	}
	h1, err := withHeader.leaf(3)
	if err != nil {
		t.Fatal(err)
	}
	if string(h0) == string(h1) {
		t.Fatal("absorbing a header prefix should change the derived leaf")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p, err := NewParams(96, 5)
	if err != nil {
		t.Fatal(err)
	}
	s := NewHashState(p)
	if _, err := s.Write([]byte("shared")); err != nil {
		t.Fatal(err)
	}
	clone := s.Clone()
	if _, err := clone.Write([]byte("only-on-clone")); err != nil {
		t.Fatal(err)
	}

	hs, err := s.leaf(1)
	if err != nil {
		t.Fatal(err)
	}
	hc, err := clone.leaf(1)
	if err != nil {
		t.Fatal(err)
	}
	if string(hs) == string(hc) {
		t.Fatal("mutating a clone's prefix must not affect the original state")
	}
}

func TestDifferentParamsDifferentPersonalisation(t *testing.T) {
	p1, err := NewParams(96, 5)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := NewParams(96, 3)
	if err != nil {
		t.Fatal(err)
	}
	s1 := NewHashState(p1)
	s2 := NewHashState(p2)
	h1, err := s1.leaf(0)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := s2.leaf(0)
	if err != nil {
		t.Fatal(err)
	}
	if string(h1) == string(h2) {
		t.Fatal("distinct (n,k) must personalise to distinct hash outputs")
	}
}
