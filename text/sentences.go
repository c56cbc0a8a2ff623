package text

import (
	"iter"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
)

// Splitter breaks guide prose into sentences. nil Splitter is valid and treats
// whole input as a single sentence.
type Splitter struct {
	*sentences.DefaultSentenceTokenizer
}

func NewSplitter(log *zap.Logger) *Splitter {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warn("Unable to load sentences tokenizer data, turning off sentence splitting", zap.Error(err))
		return nil
	}
	return &Splitter{tokenizer}
}

// Sentences returns an iterator over trimmed non-empty sentences of in.
func (s *Splitter) Sentences(in string) iter.Seq[string] {
	return func(yield func(string) bool) {
		in = CollapseSpace(in)
		if len(in) == 0 {
			return
		}
		if s == nil {
			yield(in)
			return
		}
		for _, sentence := range s.Tokenize(in) {
			t := strings.TrimSpace(sentence.Text)
			if len(t) == 0 {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// SentenceWith returns the first sentence of in containing needle, or the whole
// (space collapsed) input when no sentence does.
func (s *Splitter) SentenceWith(in, needle string) string {
	needle = CollapseSpace(needle)
	if len(needle) > 0 {
		for sentence := range s.Sentences(in) {
			if strings.Contains(sentence, needle) {
				return sentence
			}
		}
	}
	return CollapseSpace(in)
}
