package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/hodevin/decaf/internal/diag"
	"github.com/hodevin/decaf/internal/source"
)

// CachedDiagnostic is diag.Diagnostic's msgpack-safe projection: the same
// fields, serialized independently of diag's own type definitions so the
// cache file format doesn't change shape if diag.Diagnostic grows a method.
type CachedDiagnostic struct {
	Severity diag.Severity
	Code     diag.Code
	Message  string
	Primary  source.Position
	Notes    []diag.Note
	Fixes    []diag.Fix
}

// DiagnosticCache persists decafc check's per-file diagnostic results on
// disk, keyed by the sha256 of the file's content, so a directory re-check
// with --cache skips lex/parse/analyze for files that have not changed.
type DiagnosticCache struct {
	path string
	mu   sync.Mutex
	data map[string][]CachedDiagnostic
}

// LoadDiagnosticCache reads path's msgpack-encoded cache, or starts an
// empty one if the file does not yet exist.
func LoadDiagnosticCache(path string) (*DiagnosticCache, error) {
	c := &DiagnosticCache{path: path, data: make(map[string][]CachedDiagnostic)}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if len(raw) == 0 {
		return c, nil
	}
	if err := msgpack.Unmarshal(raw, &c.data); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes the cache back to disk.
func (c *DiagnosticCache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := msgpack.Marshal(c.data)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, raw, 0o600)
}

func contentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// lookup returns the cached diagnostics for content, if present.
func (c *DiagnosticCache) lookup(content []byte) ([]CachedDiagnostic, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, ok := c.data[contentHash(content)]
	return entries, ok
}

// store records bag's diagnostics under content's hash.
func (c *DiagnosticCache) store(content []byte, bag *diag.Bag) {
	entries := make([]CachedDiagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		entries = append(entries, CachedDiagnostic{
			Severity: d.Severity,
			Code:     d.Code,
			Message:  d.Message,
			Primary:  d.Primary,
			Notes:    d.Notes,
			Fixes:    d.Fixes,
		})
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[contentHash(content)] = entries
}

func bagFromCache(entries []CachedDiagnostic, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, e := range entries {
		bag.Add(diag.Diagnostic{
			Severity: e.Severity,
			Code:     e.Code,
			Message:  e.Message,
			Primary:  e.Primary,
			Notes:    e.Notes,
			Fixes:    e.Fixes,
		})
	}
	return bag
}
