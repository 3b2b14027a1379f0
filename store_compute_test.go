package flexui

import (
	"fmt"
	"strconv"
	"testing"
)

func TestCompute_FollowsSource(t *testing.T) {
	src := NewStore(2)
	double := Compute(src, func(v int) int { return v * 2 })

	for _, v := range []int{2, 5, -3, 0} {
		src.Set(v)
		if got := double.Get(); got != v*2 {
			t.Errorf("after Set(%d): Get() = %d, want %d", v, got, v*2)
		}
	}
}

func TestCompute_NotifiesBeforeSetReturns(t *testing.T) {
	src := NewStore(1)
	text := Compute(src, strconv.Itoa)

	var seen []string
	text.Subscribe(func(v string) { seen = append(seen, v) })

	src.Set(7)
	if len(seen) != 1 || seen[0] != "7" {
		t.Errorf("seen = %v, want [7]", seen)
	}
}

func TestCompute_UnchangedResultDoesNotNotify(t *testing.T) {
	src := NewStore(3)
	parity := Compute(src, func(v int) bool { return v%2 == 0 })

	count := 0
	parity.Observe(func() { count++ })

	src.Set(5)
	src.Set(6)

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestCompute2AndCompute3(t *testing.T) {
	first := NewStore("Bob")
	last := NewStore("Smith")
	age := NewStore(30)

	full := Compute2(first, last, func(a, b string) string { return a + " " + b })
	line := Compute3(first, last, age, func(a, b string, n int) string {
		return fmt.Sprintf("%s %s (%d)", a, b, n)
	})

	first.Set("Alice")
	age.Set(31)

	if full.Get() != "Alice Smith" {
		t.Errorf("full = %q", full.Get())
	}
	if line.Get() != "Alice Smith (31)" {
		t.Errorf("line = %q", line.Get())
	}
}

func TestComputeAll(t *testing.T) {
	a := NewStore(1)
	b := NewStore("x")
	c := NewArrayStore(1, 2, 3)

	summary := ComputeAll(func() string {
		return fmt.Sprintf("%d%s%d", a.Get(), b.Get(), c.Len())
	}, a, b, c)

	if summary.Get() != "1x3" {
		t.Fatalf("Get() = %q, want 1x3", summary.Get())
	}
	c.Push(4)
	b.Set("y")
	if summary.Get() != "1y4" {
		t.Errorf("Get() = %q, want 1y4", summary.Get())
	}
}

func TestCompute_Chained(t *testing.T) {
	src := NewStore(1)
	plusOne := Compute(src, func(v int) int { return v + 1 })
	text := Compute(plusOne, strconv.Itoa)

	src.Set(41)
	if text.Get() != "42" {
		t.Errorf("Get() = %q, want 42", text.Get())
	}
}

func TestComputed_SetFails(t *testing.T) {
	c := Compute(NewStore(1), func(v int) int { return v })

	err := c.Set(5)
	if !IsKind(err, KindInvalidOperation) {
		t.Fatalf("Set() error = %v, want invalid operation", err)
	}
	if c.Get() != 1 {
		t.Errorf("Get() = %d after failed Set, want 1", c.Get())
	}
}

func TestComputed_Dispose(t *testing.T) {
	src := NewStore(1)
	c := Compute(src, func(v int) int { return v * 10 })

	c.Dispose()
	src.Set(2)

	if c.Get() != 10 {
		t.Errorf("Get() = %d, want 10 after Dispose", c.Get())
	}
	if src.Subscribers() != 0 {
		t.Errorf("source Subscribers() = %d, want 0", src.Subscribers())
	}
}
