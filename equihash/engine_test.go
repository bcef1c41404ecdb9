package equihash

import "testing"

func TestCollideMergesAndTrims(t *testing.T) {
	rows := []row[uint32]{
		newLeafRow([]byte{0x00, 0x01}, uint32(0)),
		newLeafRow([]byte{0x00, 0x02}, uint32(1)),
		newLeafRow([]byte{0xff, 0x03}, uint32(2)),
	}
	out, err := collide(rows, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("expected exactly one merged row, got %d", len(out))
	}
	if len(out[0].hash) != 1 {
		t.Fatalf("expected trimmed hash of length 1, got %d", len(out[0].hash))
	}
	if out[0].hash[0] != 0x03 {
		t.Fatalf("expected 0x01^0x02=0x03, got %#x", out[0].hash[0])
	}
}

func TestCollideSkipsDuplicateIndicesWhenChecked(t *testing.T) {
	rows := []row[uint32]{
		newLeafRow([]byte{0x00, 0x01}, uint32(5)),
		newLeafRow([]byte{0x00, 0x02}, uint32(5)),
	}
	out, err := collide(rows, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no merges: both rows share index 5, got %d", len(out))
	}
}

func TestCollideAllowsSharedIndicesWhenUnchecked(t *testing.T) {
	rows := []row[uint8]{
		newLeafRow([]byte{0x00, 0x01}, uint8(5)),
		newLeafRow([]byte{0x00, 0x02}, uint8(5)),
	}
	out, err := collide(rows, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("truncated pipeline should merge regardless of shared indices, got %d rows", len(out))
	}
}

func TestCollideEmptyInput(t *testing.T) {
	out, err := collide([]row[uint32]{}, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %d", len(out))
	}
}

func TestRunRoundsNeverWidensHash(t *testing.T) {
	p, err := NewParams(32, 3)
	if err != nil {
		t.Fatal(err)
	}
	state := NewHashState(p)
	rows := make([]row[uint32], 0, p.InitialListLength())
	for i := uint32(0); i < p.InitialListLength(); i++ {
		h, err := state.leaf(i)
		if err != nil {
			t.Fatal(err)
		}
		rows = append(rows, newLeafRow(h, i))
	}
	out, err := runRounds(rows, p, true)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range out {
		if uint32(len(r.hash))*8 > p.HashBits {
			t.Fatalf("row hash should never exceed original width, got %d bytes", len(r.hash))
		}
	}
}
