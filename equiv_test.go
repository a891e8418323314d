package memocache

import "testing"

func TestGetByBytes(t *testing.T) {
	c := New[string, int](3)

	if HasBy(c, Bytes("hello")) {
		t.Fatalf("unexpected entry found in empty cache")
	}

	c.Set("hello", 42)

	if !HasBy(c, Bytes("hello")) {
		t.Fatalf("cannot find key %q by bytes", "hello")
	}
	if v, ok := GetBy(c, Bytes("hello")); !ok || v != 42 {
		t.Fatalf("unexpected value; got %d, %v; want 42", v, ok)
	}
	if _, ok := GetBy(c, Bytes("hell")); ok {
		t.Fatalf("unexpected value found for prefix query")
	}

	p := GetMutBy(c, Bytes("hello"))
	if p == nil || *p != 42 {
		t.Fatalf("unexpected pointer for key %q", "hello")
	}
	*p = 100
	if v, _ := c.Get("hello"); v != 100 {
		t.Fatalf("unexpected value after mutation; got %d; want 100", v)
	}
	if GetMutBy(c, Bytes("nope")) != nil {
		t.Fatalf("unexpected pointer for non-existent key")
	}
}

func TestGetByFold(t *testing.T) {
	c := New[string, string](4)

	c.Set("Content-Type", "text/plain")
	c.Set("content-type", "application/json")

	// The first matching slot wins.
	if v, ok := GetBy(c, Fold("CONTENT-TYPE")); !ok || v != "text/plain" {
		t.Fatalf("unexpected value; got %q, %v; want %q", v, ok, "text/plain")
	}
	if HasBy(c, Fold("Accept")) {
		t.Fatalf("unexpected entry for key %q", "Accept")
	}
}

type point struct {
	x, y int
}

// row matches every point on a given row.
type row int

func (r row) Equivalent(p point) bool {
	return p.y == int(r)
}

func TestGetByCustomEquivalent(t *testing.T) {
	c := New[point, string](4)

	c.Set(point{1, 2}, "a")
	c.Set(point{3, 4}, "b")

	if v, ok := GetBy(c, row(4)); !ok || v != "b" {
		t.Fatalf("unexpected value; got %q, %v; want %q", v, ok, "b")
	}
	if HasBy(c, row(5)) {
		t.Fatalf("unexpected entry for row 5")
	}
}

func TestGetFunc(t *testing.T) {
	c := New[int, string](4)

	c.Set(10, "ten")
	c.Set(20, "twenty")

	if v, ok := c.GetFunc(func(k int) bool { return k > 15 }); !ok || v != "twenty" {
		t.Fatalf("unexpected value; got %q, %v; want %q", v, ok, "twenty")
	}
	if c.HasFunc(func(k int) bool { return k < 0 }) {
		t.Fatalf("unexpected match for negative key")
	}
	if p := c.GetMutFunc(func(k int) bool { return k == 10 }); p == nil || *p != "ten" {
		t.Fatalf("unexpected pointer for key 10")
	}
}
