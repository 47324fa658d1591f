package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"lexa/internal/diag"
	"lexa/internal/observ"
	"lexa/internal/pif"
	"lexa/internal/source"
	"lexa/internal/token"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash used as a cache key.
type Digest = [32]byte

// DiskCache stores analysis results on disk keyed by source content hash.
// Identical input bytes always produce an identical table and PIF, so the
// content hash fully determines the payload. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores one cached analysis result.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path        string
	ContentHash Digest

	// Симметричные срезы: Kinds[i] и Indices[i] образуют одну запись PIF
	Symbols []string
	Kinds   []int64
	Indices []int64
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки — подкаталог "res".
	return filepath.Join(c.dir, "res", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после успешного Rename временного файла уже нет
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. A payload written by
// an older schema counts as a miss.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим в фоне
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// resultToDiskPayload converts a successful AnalysisResult to a DiskPayload.
func resultToDiskPayload(res *AnalysisResult) *DiskPayload {
	if res == nil || res.File == nil {
		return nil
	}
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        res.File.Path,
		ContentHash: res.File.Hash,
		Symbols:     res.Symbols,
		Kinds:       make([]int64, len(res.PIF)),
		Indices:     make([]int64, len(res.PIF)),
	}
	for i, e := range res.PIF {
		payload.Kinds[i] = e.Kind.Code()
		payload.Indices[i] = e.Index
	}
	return payload
}

// diskPayloadToEntries restores the PIF slice from a payload. Returns nil when
// the payload is malformed (asymmetric slices or out-of-range kind codes).
func diskPayloadToEntries(payload *DiskPayload) []pif.Entry {
	if payload == nil || len(payload.Kinds) != len(payload.Indices) {
		return nil
	}
	entries := make([]pif.Entry, len(payload.Kinds))
	for i, code := range payload.Kinds {
		kind, ok := token.KindFromCode(code)
		if !ok {
			return nil
		}
		entries[i] = pif.Entry{Kind: kind, Index: payload.Indices[i]}
	}
	return entries
}

// AnalyzeCached runs Analyze with a read-through disk cache. On a hit the token
// slice stays empty: only the symbol table and the PIF are restored.
func AnalyzeCached(path string, maxDiagnostics int, cache *DiskCache) (*AnalysisResult, bool, error) {
	fs := source.NewFileSet()
	timer := observ.NewTimer()

	ph := timer.Begin("load")
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, false, err
	}
	timer.End(ph, "")
	file := fs.Get(fileID)

	var payload DiskPayload
	if hit, getErr := cache.Get(file.Hash, &payload); getErr == nil && hit {
		// Битый payload — обычный промах, пересчитываем
		if entries := diskPayloadToEntries(&payload); entries != nil {
			report := timer.Report()
			return &AnalysisResult{
				FileSet: fs,
				File:    file,
				Symbols: payload.Symbols,
				PIF:     entries,
				Bag:     diag.NewBag(maxDiagnostics),
				Timing:  &report,
			}, true, nil
		}
	}

	res, err := analyzeFile(fs, fileID, maxDiagnostics, timer)
	if err != nil {
		return res, false, err
	}
	if putErr := cache.Put(file.Hash, resultToDiskPayload(res)); putErr != nil {
		return res, false, putErr
	}
	return res, false, nil
}
