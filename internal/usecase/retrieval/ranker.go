package retrieval

import (
	"regexp"
	"sort"
	"strings"

	"github.com/driveassist/backend/internal/entity"
)

var alnumRe = regexp.MustCompile(`[^a-z0-9]+`)

type scoredFile struct {
	rec   entity.FileRecord
	score int
}

// RankByQuery orders files by lexical relevance to the query, descending.
// The sort is stable: files with equal scores keep the provider's order.
func RankByQuery(files []entity.FileRecord, query string) []entity.FileRecord {
	if len(files) < 2 {
		return files
	}

	query = strings.ToLower(query)
	queryTerms := wordSet(query)
	queryAlnum := alnumRe.ReplaceAllString(query, "")

	scored := make([]scoredFile, len(files))
	for i, f := range files {
		scored[i] = scoredFile{rec: f, score: relevanceScore(f.Name, query, queryTerms, queryAlnum)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	out := make([]entity.FileRecord, len(scored))
	for i, s := range scored {
		out[i] = s.rec
	}
	return out
}

// relevanceScore counts query terms appearing in the filename, with a +2
// bonus for PDFs when the query mentions pdf and a +5 bonus when the
// alphanumeric-stripped query and filename contain one another.
func relevanceScore(name, query string, queryTerms map[string]struct{}, queryAlnum string) int {
	name = strings.ToLower(name)

	score := 0
	for term := range wordSet(name) {
		if _, ok := queryTerms[term]; ok {
			score++
		}
	}

	if strings.Contains(query, "pdf") && strings.HasSuffix(name, ".pdf") {
		score += 2
	}

	nameAlnum := alnumRe.ReplaceAllString(name, "")
	if queryAlnum != "" && nameAlnum != "" &&
		(strings.Contains(nameAlnum, queryAlnum) || strings.Contains(queryAlnum, nameAlnum)) {
		score += 5
	}

	return score
}

// RankByFilename orders files by Jaccard similarity of their names to the
// requested filename, descending, preserving input order on ties.
func RankByFilename(files []entity.FileRecord, target string) []entity.FileRecord {
	if len(files) < 2 {
		return files
	}

	out := make([]entity.FileRecord, len(files))
	copy(out, files)
	sort.SliceStable(out, func(i, j int) bool {
		return FilenameSimilarity(out[i].Name, target) > FilenameSimilarity(out[j].Name, target)
	})
	return out
}

// FilenameSimilarity returns the Jaccard similarity (intersection over
// union) of the word sets of two filenames, in [0, 1].
func FilenameSimilarity(a, b string) float64 {
	wordsA := wordSet(strings.ToLower(a))
	wordsB := wordSet(strings.ToLower(b))
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range termRe.FindAllString(s, -1) {
		set[w] = struct{}{}
	}
	return set
}
