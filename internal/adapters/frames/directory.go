// Package frames reads per-frame data files from a directory tree laid out as
// <root>/<frame id>/<name>.<ext>.
package frames

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/nodal/internal/core/domain"
	"go.trai.ch/nodal/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FrameSource = (*Directory)(nil)

// Directory implements ports.FrameSource over a frame directory tree. Listings are
// cached until Invalidate is called, either directly or by Watch.
type Directory struct {
	mu   sync.Mutex
	root string

	// fingerprint identifies the active path configuration; seen is the
	// fingerprint PathChanged last reported against.
	fingerprint uint64
	seen        uint64

	count   int
	counted bool
	files   map[int]domain.FrameFileSet

	logger ports.Logger
}

// NewDirectory creates a source with no active path.
func NewDirectory(logger ports.Logger) *Directory {
	fp := fingerprint("")
	return &Directory{
		fingerprint: fp,
		seen:        fp,
		files:       make(map[int]domain.FrameFileSet),
		logger:      logger,
	}
}

// SetActivePath switches to the tree at path. An empty path disables the source.
func (d *Directory) SetActivePath(path string) error {
	if path != "" {
		path = filepath.Clean(path)
		info, err := os.Stat(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to open frames directory"), "path", path)
		}
		if !info.IsDir() {
			return zerr.With(zerr.New("frames path is not a directory"), "path", path)
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.root = path
	d.fingerprint = fingerprint(path)
	d.invalidateLocked()
	return nil
}

// Root returns the active path.
func (d *Directory) Root() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.root
}

// PathChanged reports whether the active path configuration changed since the
// previous call: either SetActivePath switched directories, or the files of frame 0
// were rewritten in place, as when a solver restarts into the same directory. A
// change drops every cached listing.
func (d *Directory) PathChanged() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fingerprint = fingerprint(d.root)
	changed := d.fingerprint != d.seen
	d.seen = d.fingerprint
	if changed {
		d.invalidateLocked()
	}
	return changed
}

// FrameCount returns the number of consecutive frame directories starting at 0.
func (d *Directory) FrameCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.counted {
		return d.count
	}
	d.count = 0
	if d.root != "" {
		for {
			info, err := os.Stat(d.frameDir(d.count))
			if err != nil || !info.IsDir() {
				break
			}
			d.count++
		}
	}
	d.counted = true
	return d.count
}

// FrameFiles lists the regular files of frame frameID sorted by file name.
// Frames outside the available range have no files.
func (d *Directory) FrameFiles(frameID int) (domain.FrameFileSet, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.root == "" || frameID < 0 {
		return nil, nil
	}
	if set, ok := d.files[frameID]; ok {
		return slices.Clone(set), nil
	}

	dir := d.frameDir(frameID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to list frame"), "path", dir)
	}

	var set domain.FrameFileSet
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := filepath.Ext(entry.Name())
		set = append(set, domain.FrameFile{
			Name: strings.TrimSuffix(entry.Name(), ext),
			Ext:  strings.TrimPrefix(ext, "."),
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	d.files[frameID] = set
	return slices.Clone(set), nil
}

// Invalidate drops every cached listing.
func (d *Directory) Invalidate() {
	d.mu.Lock()
	d.invalidateLocked()
	d.mu.Unlock()
}

func (d *Directory) invalidateLocked() {
	d.counted = false
	clear(d.files)
}

func (d *Directory) frameDir(frameID int) string {
	return filepath.Join(d.root, strconv.Itoa(frameID))
}

// fingerprint hashes root together with the name, size and modification time of
// every visible file of frame 0.
func fingerprint(root string) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(root)
	if root == "" {
		return h.Sum64()
	}

	entries, err := os.ReadDir(filepath.Join(root, "0"))
	if err != nil {
		return h.Sum64()
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		_, _ = fmt.Fprintf(h, "\x00%s\x00%d\x00%d", entry.Name(), info.Size(), info.ModTime().UnixNano())
	}
	return h.Sum64()
}
