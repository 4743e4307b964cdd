package textproc

import (
	"regexp"
	"sort"
	"strings"
)

var (
	alphaWordRe  = regexp.MustCompile(`\b[a-zA-Z]{2,}\b`)
	properNounRe = regexp.MustCompile(`\b[A-Z][a-z]+\b`)
)

// General English stop words plus query noise that should never drive a
// file search ("file", "summarize", ...).
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		a an and are as at be by for from has he in is it its of on that the
		to was will with they this these their there than them his her she or
		but if we you your i my me our us up out down can could would should
		have had do does did shall may might must been being am were all any
		both each few more most other some such no nor not only own same so
		also just now very too then here how where
		please content file document summarize summary`) {
		stopWords[w] = struct{}{}
	}
}

// Words that tend to be the salient terms of professional documents. Naive
// frequency ranking over resume-like text surfaces generic words, so these
// get promoted ahead of the frequency order.
var professionalVocab = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		experience skill education project work university degree certificate
		training language software programming management analysis research
		development design engineering marketing sales cv resume pdf
		qualification internship job career professional technical`) {
		professionalVocab[w] = struct{}{}
	}
}

// ExtractKeywords returns up to maxKeywords search terms from text, ranked
// by frequency and then re-ranked so professional vocabulary, likely proper
// nouns and long words come first.
func ExtractKeywords(text string, maxKeywords int) []string {
	if text == "" {
		return nil
	}
	if maxKeywords <= 0 {
		maxKeywords = 10
	}

	words := alphaWordRe.FindAllString(strings.ToLower(text), -1)

	freq := make(map[string]int)
	var order []string // first-seen order keeps equal-frequency ties deterministic
	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if freq[w] == 0 {
			order = append(order, w)
		}
		freq[w]++
	}
	if len(order) == 0 {
		return nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > maxKeywords*2 {
		order = order[:maxKeywords*2]
	}

	// Capitalized words in the source are likely names.
	names := make(map[string]struct{})
	for _, m := range properNounRe.FindAllString(text, -1) {
		if len(m) > 2 {
			names[strings.ToLower(m)] = struct{}{}
		}
	}

	var priority, regular []string
	for _, w := range order {
		if isPriorityKeyword(w, names) {
			priority = append(priority, w)
		} else {
			regular = append(regular, w)
		}
	}

	result := append(priority, regular...)
	if len(result) > maxKeywords {
		result = result[:maxKeywords]
	}
	return result
}

func isPriorityKeyword(w string, names map[string]struct{}) bool {
	if _, ok := professionalVocab[w]; ok {
		return true
	}
	if _, ok := names[w]; ok {
		return true
	}
	return len(w) > 6 || strings.HasPrefix(w, "cv") || strings.HasSuffix(w, "cv")
}
