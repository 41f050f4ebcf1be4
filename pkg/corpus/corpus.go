// Package corpus loads the newline-delimited word corpus (and optional
// supplementary word-list files) the index is built over, per spec.md §6.4
// and SPEC_FULL.md §S.1.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FileLoader loads and upper-cases a corpus file plus zero or more
// word-list files, merging them into one deduplicated word set. The result
// is cached after the first call, mirroring the index's build-once
// lifecycle.
type FileLoader struct {
	CorpusPath   string
	WordListPaths []string

	once  sync.Once
	words []string
	err   error
}

// NewFileLoader returns a FileLoader over corpusPath and any additional
// wordListPaths to merge in.
func NewFileLoader(corpusPath string, wordListPaths ...string) *FileLoader {
	return &FileLoader{CorpusPath: corpusPath, WordListPaths: wordListPaths}
}

// Load reads and merges every configured file, upper-casing each word with
// Unicode-correct casing rules, and deduplicating while preserving the
// first-seen order. The result is memoized; subsequent calls return the
// same slice without re-reading files.
func (l *FileLoader) Load() ([]string, error) {
	l.once.Do(func() {
		l.words, l.err = loadMerged(l.CorpusPath, l.WordListPaths)
	})
	return l.words, l.err
}

func loadMerged(corpusPath string, wordListPaths []string) ([]string, error) {
	caser := cases.Upper(language.Und)

	seen := make(map[string]struct{})
	var merged []string

	paths := append([]string{corpusPath}, wordListPaths...)
	for _, path := range paths {
		words, err := readWordFile(path, caser)
		if err != nil {
			return nil, fmt.Errorf("corpus: load %s: %w", path, err)
		}
		for _, w := range words {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			merged = append(merged, w)
		}
	}
	return merged, nil
}

func readWordFile(path string, caser cases.Caser) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		words = append(words, caser.String(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
