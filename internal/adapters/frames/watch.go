package frames

import (
	"context"
	"os"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

// Watch invalidates the cached listings whenever the active tree changes, so frames
// written by a running solver show up on the next tick. It watches the path active
// when called and blocks until ctx is done.
func (d *Directory) Watch(ctx context.Context) error {
	root := d.Root()
	if root == "" {
		<-ctx.Done()
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create frames watcher")
	}
	defer w.Close() //nolint:errcheck // Best effort close in defer

	if err := w.Add(root); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch frames directory"), "path", root)
	}
	// Anything written before the watch was in place is picked up by a fresh listing.
	d.Invalidate()
	for i := range d.FrameCount() {
		_ = w.Add(d.frameDir(i))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			d.Invalidate()

			// New frame directories must be watched for the files written into them.
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.Add(event.Name)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			d.logger.Warn("frames watcher error", "path", root, "error", err.Error())
		}
	}
}
