package internal

import (
	"bufio"
	"io"
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// ScanLines yields the lines of input, without line endings. A read error
// is yielded once, with an empty line, and ends the sequence.
func ScanLines(input io.Reader) iter.Seq2[string, error] {
	return func(yield func(line string, err error) bool) {
		scanner := bufio.NewScanner(input)
		scanner.Buffer(nil, 1024*1024)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}
