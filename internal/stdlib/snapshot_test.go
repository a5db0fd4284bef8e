package stdlib

import (
	"reflect"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	lib, err := Builtin("roblox")
	if err != nil {
		t.Fatal(err)
	}
	data, err := lib.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Restore(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back.ClassNames(), lib.ClassNames()) {
		t.Fatal("class names differ after restore")
	}
	c, _ := back.Class("ImageButton")
	if !c.HasProperty("Image") || !c.HasEvent("Activated") {
		t.Error("restored library lost members")
	}

	d1, err := lib.Digest()
	if err != nil {
		t.Fatal(err)
	}
	d2, _ := back.Digest()
	if d1 != d2 {
		t.Error("digest changed after restore")
	}
}

func TestDigestDependsOnContent(t *testing.T) {
	a := mustParse(t, "[roblox_classes.A]\nproperties = [\"x\", \"y\"]")
	b := mustParse(t, "[roblox_classes.A]\nproperties = [\"y\", \"x\"]")
	c := mustParse(t, "[roblox_classes.A]\nproperties = [\"x\"]")
	da, _ := a.Digest()
	db, _ := b.Digest()
	dc, _ := c.Digest()
	if da != db {
		t.Error("member order changed the digest")
	}
	if da == dc {
		t.Error("different members share a digest")
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	if _, err := Restore([]byte{0xc1, 0x00}); err == nil {
		t.Error("expected decode error")
	}
}
