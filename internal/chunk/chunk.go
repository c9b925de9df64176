// Package chunk splits a byte region into line aligned pieces.
package chunk

import "bytes"

// Chunk is the half-open range [Start, End) of a region.
type Chunk struct {
	Start int
	End   int
}

func (c Chunk) Len() int { return c.End - c.Start }

// Split cuts data into chunks of roughly size bytes. Every chunk but the last
// ends right after a '\n'; the last one ends at len(data).
func Split(data []byte, size int) []Chunk {
	if size < 1 {
		size = 1
	}
	var (
		chunks []Chunk
		i, j   int // start and stop index
	)
	for i < len(data) {
		j = min(len(data)-1, i+size)
		if data[j] == '\n' {
			j++ // lucky, found newline
		} else if k := bytes.IndexByte(data[j:], '\n'); k == -1 {
			j = len(data)
		} else {
			j += k + 1
		}
		chunks = append(chunks, Chunk{Start: i, End: j})
		i = j
	}
	return chunks
}
