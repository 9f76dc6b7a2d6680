// apps/go-solver/internal/words/words.go
//
// Provides the process-wide dictionary the solver draws its candidate pool from.
//
// Responsibilities:
//   - Load the word list from a file (WORDS_FILE) or fall back to the embedded
//     default in assets/words.txt.
//   - Normalize entries (trim, lowercase, skip blanks and '#' comments, drop
//     anything that is not purely alphabetic).
//   - Store words in a patricia trie: duplicates collapse on insert and prefix
//     lookups come for free.
//
// Lifecycle:
//   • Init runs exactly once (sync.Once); the dictionary is read-only afterwards,
//     so concurrent readers need no locking.
//   • Load builds an independent dictionary (used by tests and the CLI).

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("words: dictionary is empty")

// Dictionary is an immutable, deduplicated word set.
type Dictionary struct {
	trie  *patricia.Trie
	count int
}

var (
	initOnce sync.Once
	shared   *Dictionary
	initErr  error
)

// Init loads the shared dictionary exactly once. path may be empty to use the
// embedded default. Later calls return the first call's result.
func Init(path string) error {
	initOnce.Do(func() {
		shared, initErr = open(path)
	})
	return initErr
}

// Default returns the shared dictionary, loading the embedded list on first
// use if Init was never called. It panics if that load fails.
func Default() *Dictionary {
	if err := Init(""); err != nil {
		panic(err)
	}
	return shared
}

func open(path string) (*Dictionary, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if path != "" {
		rc, err = os.Open(path)
	} else {
		rc, err = assets.Words()
	}
	if err != nil {
		return nil, fmt.Errorf("words: open %q: %w", path, err)
	}
	defer rc.Close()
	return Load(rc)
}

// Load reads one word per line from r.
func Load(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{trie: patricia.NewTrie()}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := normalize(sc.Text())
		if w == "" {
			continue
		}
		if d.trie.Insert(patricia.Prefix(w), utf8.RuneCountInString(w)) {
			d.count++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read: %w", err)
	}
	if d.count == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// FromList builds a dictionary from an in-memory list.
func FromList(list []string) (*Dictionary, error) {
	return Load(strings.NewReader(strings.Join(list, "\n")))
}

// normalize lowercases and trims a line, returning "" for comments, blanks
// and non-alphabetic entries.
func normalize(line string) string {
	w := strings.ToLower(strings.TrimSpace(line))
	if w == "" || strings.HasPrefix(w, "#") {
		return ""
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return ""
		}
	}
	return w
}

// Len is the number of distinct words.
func (d *Dictionary) Len() int { return d.count }

// Contains reports whether w (case-insensitive) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	return d.trie.Match(patricia.Prefix(strings.ToLower(w)))
}

// Words returns every word with exactly n letters, sorted. n <= 0 returns all.
func (d *Dictionary) Words(n int) []string {
	var out []string
	_ = d.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		if n <= 0 || item.(int) == n {
			out = append(out, string(p))
		}
		return nil
	})
	sort.Strings(out)
	return out
}

// WithPrefix returns up to limit words starting with prefix, sorted.
// limit <= 0 means no limit.
func (d *Dictionary) WithPrefix(prefix string, limit int) []string {
	var out []string
	_ = d.trie.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	sort.Strings(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Stats returns the total word count and the count for length n.
func (d *Dictionary) Stats(n int) (total, ofLength int) {
	return d.count, len(d.Words(n))
}
