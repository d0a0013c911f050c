// internal/words/words.go
//
// Dictionary sources for the guess generator.
//
// Responsibilities:
//   - Build membership sets from inline word lists, files, or the embedded
//     default list.
//   - Normalize words to lowercase and filter to a requested length.
//
// Word lists:
//   - Inline: whitespace/newline-separated (the --dictionary flag).
//   - File: one word per line, '#' comments and blanks skipped.
//   - Embedded: small default 5-letter list (ensures the helper is usable
//     even if no list is configured).

package words

import (
	"bufio"
	_ "embed"
	"os"
	"strings"
)

//go:embed default_words.txt
var embeddedWords string

// Set is a map-backed dictionary. The zero value is empty and rejects
// everything; build one with ParseSet, LoadFile, or Default.
type Set map[string]struct{}

// Contains reports whether w is in the set.
func (s Set) Contains(w string) bool {
	_, ok := s[strings.ToLower(w)]
	return ok
}

// Count returns the number of words in the set.
func (s Set) Count() int { return len(s) }

// ParseSet builds a Set from a whitespace-separated word list. Words are
// lowercased; when length > 0, words of any other length are dropped.
func ParseSet(list string, length int) Set {
	s := make(Set)
	for _, w := range strings.Fields(list) {
		if w = normalize(w, length); w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

// LoadFile reads one word per line, skipping blanks and '#' comments.
func LoadFile(path string, length int) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := make(Set)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w := normalize(line, length); w != "" {
			s[w] = struct{}{}
		}
	}
	return s, sc.Err()
}

// Default returns the embedded word list filtered to length.
func Default(length int) Set {
	return ParseSet(embeddedWords, length)
}

// normalize lowercases and trims a word, returning "" when it fails the
// length or alphabet checks.
func normalize(w string, length int) string {
	w = strings.TrimSpace(strings.ToLower(w))
	if w == "" || !isAlpha(w) {
		return ""
	}
	if length > 0 && len(w) != length {
		return ""
	}
	return w
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
