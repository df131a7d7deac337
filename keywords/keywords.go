package keywords

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const DefaultMaxKeywords = 10
const minTokenLength = 2

// Keyword is a candidate keyword and the number of times it occurs in a document.
type Keyword struct {
	Word  string
	Count int
}

// Extractor ranks the words of a document by frequency, ignoring the words in its stop-word
// set. An Extractor is immutable once constructed and is safe for concurrent use.
type Extractor struct {
	stopwords map[string]struct{}
	language  language.Tag
}

// Default is the extractor for Spanish text.
var Default = New(language.Spanish, Spanish)

// New returns an Extractor that lower-cases text using the rules for lang and discards any
// word in the stop-word lists.
func New(lang language.Tag, stopwords ...[]string) *Extractor {
	x := Extractor{
		stopwords: map[string]struct{}{},
		language:  lang,
	}

	for _, list := range stopwords {
		for _, w := range list {
			if w = norm.NFC.String(strings.TrimSpace(w)); w != "" {
				x.stopwords[cases.Lower(lang).String(w)] = struct{}{}
			}
		}
	}

	return &x
}

// Extract returns up to max keywords from text using the default Spanish extractor.
func Extract(text string, max int) []string {
	return Default.Extract(text, max)
}

// Join formats a keyword list the way it is stored in the records worksheet.
func Join(keywords []string) string {
	return strings.Join(keywords, ", ")
}

// Extract returns the max most frequent words in text, most frequent first. A non-positive
// max selects DefaultMaxKeywords.
func (x *Extractor) Extract(text string, max int) []string {
	if max <= 0 {
		max = DefaultMaxKeywords
	}

	ranked := x.Rank(text)
	if len(ranked) > max {
		ranked = ranked[:max]
	}

	list := make([]string, 0, len(ranked))
	for _, k := range ranked {
		list = append(list, k.Word)
	}

	return list
}

// Rank returns every word in text that is not a stop word along with its frequency, ordered by
// descending frequency. Words with the same frequency are ordered alphabetically.
func (x *Extractor) Rank(text string) []Keyword {
	counts := map[string]int{}
	for _, token := range x.tokenize(text) {
		if _, ok := x.stopwords[token]; !ok {
			counts[token]++
		}
	}

	ranked := make([]Keyword, 0, len(counts))
	for w, n := range counts {
		ranked = append(ranked, Keyword{Word: w, Count: n})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Word < ranked[j].Word
		}

		return ranked[i].Count > ranked[j].Count
	})

	return ranked
}

// IsStopWord returns true if the (normalised) word is in the extractor stop-word set.
func (x *Extractor) IsStopWord(word string) bool {
	_, ok := x.stopwords[cases.Lower(x.language).String(norm.NFC.String(word))]

	return ok
}

// tokenize splits text into lower-case runs of at least two word characters. The caser is
// created per call because a cases.Caser is not safe for concurrent use.
func (x *Extractor) tokenize(text string) []string {
	lower := cases.Lower(x.language).String(norm.NFC.String(text))
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) >= minTokenLength {
			tokens = append(tokens, w)
		}
	}

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) || r == '_'
}
