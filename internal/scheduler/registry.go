package scheduler

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// FilenameRegistry guards filename allocation so concurrent workers never
// write to the same path. A name is taken if a previous allocation claimed
// it or a file with that name already exists in the output directory.
type FilenameRegistry struct {
	mu    sync.Mutex
	dir   string
	names map[string]struct{}
}

func NewFilenameRegistry(dir string) *FilenameRegistry {
	return &FilenameRegistry{
		dir:   dir,
		names: make(map[string]struct{}),
	}
}

// Allocate derives a filename from the URL path basename and registers a
// unique variant of it, suffixing _1, _2, ... on collision. URLs without a
// usable basename get a generated name. The check-and-register step is a
// single critical section.
func (r *FilenameRegistry) Allocate(rawURL string) string {
	base := baseFilename(rawURL)
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	r.mu.Lock()
	defer r.mu.Unlock()
	name := base
	for counter := 1; r.taken(name); counter++ {
		name = fmt.Sprintf("%s_%d%s", stem, counter, ext)
	}
	r.names[name] = struct{}{}
	return name
}

// Release returns a name to the pool after a failed or skipped download.
func (r *FilenameRegistry) Release(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.names, name)
}

func (r *FilenameRegistry) taken(name string) bool {
	if _, ok := r.names[name]; ok {
		return true
	}
	_, err := os.Stat(filepath.Join(r.dir, name))
	return err == nil
}

func baseFilename(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return generatedFilename()
	}
	base := path.Base(parsed.Path)
	if base == "." || base == "/" || base == "" {
		return generatedFilename()
	}
	return base
}

func generatedFilename() string {
	return "download_" + uuid.NewString()[:8]
}
