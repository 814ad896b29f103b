package messaging

import (
	"iter"

	"github.com/opd-ai/toxbind/limits"
)

// Splitter produces the chunks of one message. It borrows the text and keeps
// only a byte offset, so creating one is free. A Splitter is not restartable
// and is not safe for concurrent use.
type Splitter struct {
	text string
	pos  int
	max  int
	done bool
}

// NewSplitter returns a Splitter producing chunks of at most maxBytes bytes.
// A maxBytes below 1 is treated as 1.
func NewSplitter(text string, maxBytes int) *Splitter {
	if maxBytes < 1 {
		maxBytes = 1
	}
	return &Splitter{text: text, max: maxBytes, done: len(text) == 0}
}

// FriendSplit splits text for consecutive direct messages.
func FriendSplit(text string) *Splitter {
	return NewSplitter(text, limits.FriendSplitLength)
}

// ConferenceSplit splits text for consecutive conference messages.
func ConferenceSplit(text string) *Splitter {
	return NewSplitter(text, limits.ConferenceSplitLength)
}

// Next returns the next chunk. The second result is false once the text is
// exhausted.
func (s *Splitter) Next() (string, bool) {
	if s.done {
		return "", false
	}

	if len(s.text)-s.pos <= s.max {
		chunk := s.text[s.pos:]
		s.pos = len(s.text)
		s.done = true
		return chunk, true
	}

	cut := s.boundary(s.pos + s.max)

	// Prefer breaking at whitespace within half a budget of the cut. The
	// whitespace byte itself is consumed.
	for w, n := cut, 0; w > s.pos && n < s.max/2; w, n = w-1, n+1 {
		if w < len(s.text) && isSpace(s.text[w]) {
			chunk := s.text[s.pos:w]
			s.advance(w + 1)
			return chunk, true
		}
	}

	chunk := s.text[s.pos:cut]
	s.advance(cut)
	return chunk, true
}

// All yields the remaining chunks in order.
func (s *Splitter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			chunk, ok := s.Next()
			if !ok || !yield(chunk) {
				return
			}
		}
	}
}

// Remaining reports how many bytes of the text have not been emitted yet.
func (s *Splitter) Remaining() int {
	return len(s.text) - s.pos
}

// boundary moves cut back onto the start of a UTF-8 sequence. If the code
// point starting at pos is itself longer than the budget, the whole code
// point is taken so the splitter always makes progress.
func (s *Splitter) boundary(cut int) int {
	c := cut
	for c > s.pos && isContinuation(s.text[c]) {
		c--
	}
	if c > s.pos {
		return c
	}
	c = cut
	for c < len(s.text) && isContinuation(s.text[c]) {
		c++
	}
	return c
}

func (s *Splitter) advance(pos int) {
	s.pos = pos
	if s.pos >= len(s.text) {
		s.pos = len(s.text)
		s.done = true
	}
}

// Split returns every chunk of text for the given budget.
func Split(text string, maxBytes int) []string {
	var chunks []string
	for chunk := range NewSplitter(text, maxBytes).All() {
		chunks = append(chunks, chunk)
	}
	return chunks
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n'
}
