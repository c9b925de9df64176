package chunk

import (
	"fmt"
	"strings"
	"testing"
)

func TestSplitCoverage(t *testing.T) {
	inputs := map[string]string{
		"empty":        "",
		"single":       "Hamburg;12.0\n",
		"no-final-nl":  "Hamburg;12.0\nBulawayo;8.9",
		"only-newline": "\n",
		"lines": strings.Repeat("Hamburg;12.0\nBulawayo;8.9\nPalembang;38.8\n", 50) +
			"St. John's;15.2\n",
	}
	for name, in := range inputs {
		data := []byte(in)
		for _, size := range []int{0, 1, 2, 7, 13, 64, 1000, 1 << 20} {
			t.Run(fmt.Sprintf("%s/%d", name, size), func(t *testing.T) {
				chunks := Split(data, size)
				if len(data) == 0 {
					if len(chunks) != 0 {
						t.Fatalf("expected no chunks, got %v", chunks)
					}
					return
				}
				var pos int
				for i, c := range chunks {
					if c.Start != pos {
						t.Fatalf("chunk %d starts at %d, want %d", i, c.Start, pos)
					}
					if c.Len() <= 0 {
						t.Fatalf("chunk %d is empty: %v", i, c)
					}
					if i < len(chunks)-1 && data[c.End-1] != '\n' {
						t.Fatalf("chunk %d does not end after a newline: %v", i, c)
					}
					pos = c.End
				}
				if pos != len(data) {
					t.Fatalf("chunks end at %d, want %d", pos, len(data))
				}
			})
		}
	}
}

func TestSplitSizes(t *testing.T) {
	data := []byte("aa;1.0\nbb;2.0\ncc;3.0\n")
	tests := []struct {
		size int
		want []Chunk
	}{
		{6, []Chunk{{0, 7}, {7, 14}, {14, 21}}},
		{7, []Chunk{{0, 14}, {14, 21}}},
		{100, []Chunk{{0, 21}}},
	}
	for _, tt := range tests {
		got := Split(data, tt.size)
		if fmt.Sprint(got) != fmt.Sprint(tt.want) {
			t.Errorf("size %d: got %v, want %v", tt.size, got, tt.want)
		}
	}
}
