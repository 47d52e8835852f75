package cluster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nishiharu/cicada-go/symbol"
)

// Repository is a word-id to cluster-id map loaded once from a path or
// reader. A Repository is safe for concurrent Lookup calls but is built by
// a single Load; construct one Repository per goroutine/thread that needs
// its own cache rather than sharing one across a pool, per spec.md §5.
type Repository struct {
	clusters map[symbol.Symbol]symbol.Symbol
}

// New returns an empty Repository, ready for Load or LoadFile.
func New() *Repository {
	return &Repository{clusters: make(map[symbol.Symbol]symbol.Symbol)}
}

// LoadFile opens path and loads it via Load.
func LoadFile(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}
	defer f.Close()

	r := New()
	if err := r.Load(f); err != nil {
		return nil, err
	}

	return r, nil
}

// Load reads the text cluster-map format, one "word clusterid" pair per
// line (whitespace-separated, blank lines and "#"-prefixed lines skipped),
// interning both fields as symbols and replacing r's existing map.
func (r *Repository) Load(src io.Reader) error {
	clusters := make(map[symbol.Symbol]symbol.Symbol)

	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("%w: %q", ErrMalformedLine, line)
		}

		word, err := symbol.Intern(fields[0])
		if err != nil {
			return fmt.Errorf("cluster: word: %w", err)
		}
		id, err := symbol.Intern(fields[1])
		if err != nil {
			return fmt.Errorf("cluster: id: %w", err)
		}

		clusters[word] = id
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cluster: %w", err)
	}

	r.clusters = clusters

	return nil
}

// Lookup returns the cluster id for word and whether one was loaded.
func (r *Repository) Lookup(word symbol.Symbol) (symbol.Symbol, bool) {
	id, ok := r.clusters[word]

	return id, ok
}

// Len reports how many word entries are loaded.
func (r *Repository) Len() int {
	return len(r.clusters)
}
