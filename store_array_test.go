package flexui

import (
	"slices"
	"testing"
)

func TestArrayStore_Operations(t *testing.T) {
	type tc struct {
		op       func(a *ArrayStore[string]) error
		expected []string
		wantErr  bool
	}

	tests := map[string]tc{
		"push": {
			op:       func(a *ArrayStore[string]) error { a.Push("d", "e"); return nil },
			expected: []string{"a", "b", "c", "d", "e"},
		},
		"insert in the middle": {
			op:       func(a *ArrayStore[string]) error { return a.Insert(1, "x") },
			expected: []string{"a", "x", "b", "c"},
		},
		"insert at end": {
			op:       func(a *ArrayStore[string]) error { return a.Insert(3, "x") },
			expected: []string{"a", "b", "c", "x"},
		},
		"insert out of range": {
			op:       func(a *ArrayStore[string]) error { return a.Insert(4, "x") },
			expected: []string{"a", "b", "c"},
			wantErr:  true,
		},
		"remove": {
			op:       func(a *ArrayStore[string]) error { return a.RemoveAt(0) },
			expected: []string{"b", "c"},
		},
		"remove out of range": {
			op:       func(a *ArrayStore[string]) error { return a.RemoveAt(-1) },
			expected: []string{"a", "b", "c"},
			wantErr:  true,
		},
		"set at": {
			op:       func(a *ArrayStore[string]) error { return a.SetAt(2, "z") },
			expected: []string{"a", "b", "z"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := NewArrayStore("a", "b", "c")
			before := a.Get()

			err := tt.op(a)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !IsKind(err, KindInvalidOperation) {
				t.Errorf("error kind = %v, want invalid operation", err)
			}
			if !slices.Equal(a.Get(), tt.expected) {
				t.Errorf("Get() = %v, want %v", a.Get(), tt.expected)
			}
			if !slices.Equal(before, []string{"a", "b", "c"}) {
				t.Errorf("previous slice was modified: %v", before)
			}
		})
	}
}

func TestArrayStore_EveryChangeNotifies(t *testing.T) {
	a := NewArrayStore(1)
	count := 0
	a.Observe(func() { count++ })

	a.Push(2)
	_ = a.SetAt(0, 1)
	_ = a.RemoveAt(0)

	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
	if v, err := a.At(0); err != nil || v != 2 {
		t.Errorf("At(0) = %d, %v, want 2", v, err)
	}
}
