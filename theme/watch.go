// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/toggleui/toggle"
	"github.com/toggleui/toggle/style"
)

// settle is how long writes to a watched file must pause before it is
// reloaded. Editors often write a file in several steps.
const settle = 50 * time.Millisecond

// Watch calls fn with the palette from the file at path whenever the file
// changes, until ctx is done. Files that fail to load are logged and
// skipped. fn runs on the watching goroutine; UI code must hand the
// palette over to its own goroutine.
//
// Watch returns once the watch is established.
func Watch(ctx context.Context, path string, fn func(style.Palette)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	// Watch the directory: editors replace files by renaming, which drops
	// a watch on the file itself.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return errors.Wrapf(err, "watching %s", dir)
	}
	go watch(ctx, w, filepath.Clean(path), fn)
	return nil
}

func watch(ctx context.Context, w *fsnotify.Watcher, path string, fn func(style.Palette)) {
	defer w.Close()
	log := toggle.Logger()
	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warn("theme: watch error", "err", err)
		case <-timer.C:
			f, err := LoadFile(path)
			if err != nil {
				log.Warn("theme: reload failed", "err", err)
				continue
			}
			log.Debug("theme: reloaded", "path", path)
			fn(Load(f))
		}
	}
}
