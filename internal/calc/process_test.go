package calc

import (
	"errors"
	"strings"
	"testing"

	"github.com/miku/1brc-engine/internal/measure"
	"github.com/miku/1brc-engine/internal/report"
	"github.com/miku/1brc-engine/internal/table"
)

func processString(t *testing.T, in string) measure.Result {
	t.Helper()
	tab := table.New(1024)
	if err := ProcessChunk([]byte(in), tab); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result := make(measure.Result)
	Merge(result, tab)
	return result
}

func TestProcessChunk(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "{}"},
		{"example", "Hamburg;12.0\nBulawayo;8.9\nHamburg;-3.4\n", "{Bulawayo=8.9/8.9/8.9, Hamburg=-3.4/4.3/12.0}"},
		{"no-final-newline", "Hamburg;12.0\nBulawayo;8.9", "{Bulawayo=8.9/8.9/8.9, Hamburg=12.0/12.0/12.0}"},
		{"prefix-keys", "Ab;1.0\nA;2.0\nAbc;3.0\nA;-2.0\n", "{A=-2.0/0.0/2.0, Ab=1.0/1.0/1.0, Abc=3.0/3.0/3.0}"},
		{"empty-key", ";1.5\n", "{=1.5/1.5/1.5}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := report.String(processString(t, tt.in)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProcessChunkKeyTooLong(t *testing.T) {
	ok := strings.Repeat("k", measure.MaxKeyLen) + ";1.0\n"
	processString(t, ok)

	long := strings.Repeat("k", measure.MaxKeyLen+1) + ";1.0\n"
	err := ProcessChunk([]byte(long), table.New(16))
	if !errors.Is(err, measure.ErrKeyTooLong) {
		t.Fatalf("got %v, want %v", err, measure.ErrKeyTooLong)
	}
}

func TestProcessChunkCapacityExhausted(t *testing.T) {
	err := ProcessChunk([]byte("a;1.0\nb;1.0\nc;1.0\n"), table.New(2))
	if !errors.Is(err, table.ErrCapacityExhausted) {
		t.Fatalf("got %v, want %v", err, table.ErrCapacityExhausted)
	}
}
