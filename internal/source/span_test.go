package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 30, End: 35},
			expected: Span{File: 1, Start: 10, End: 35},
		},
		{
			name:     "nested span",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 1, Start: 12, End: 14},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "other file is ignored",
			a:        Span{File: 1, Start: 10, End: 20},
			b:        Span{File: 2, Start: 0, End: 50},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	outer := Span{File: 0, Start: 4, End: 12}
	if !outer.Contains(Span{File: 0, Start: 4, End: 12}) {
		t.Fatalf("span must contain itself")
	}
	if !outer.Contains(Span{File: 0, Start: 5, End: 6}) {
		t.Fatalf("expected inner span to be contained")
	}
	if outer.Contains(Span{File: 0, Start: 3, End: 6}) {
		t.Fatalf("span starting before outer must not be contained")
	}
	if outer.Contains(Span{File: 1, Start: 5, End: 6}) {
		t.Fatalf("span from another file must not be contained")
	}
}

func TestSpan_LenEmpty(t *testing.T) {
	s := Span{Start: 3, End: 3}
	if !s.Empty() || s.Len() != 0 {
		t.Fatalf("expected empty span, got %v", s)
	}
	s.End = 9
	if s.Empty() || s.Len() != 6 {
		t.Fatalf("expected len 6, got %d", s.Len())
	}
}
