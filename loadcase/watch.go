package loadcase

import (
	"context"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors a case file for changes and calls onChange with the newly
// loaded File each time it is written. It runs until ctx is cancelled.
//
// If a reload fails, for example on invalid YAML mid-edit, the error is
// passed to onError and onChange is not called; watcher errors are reported
// the same way. A nil onError discards them.
func Watch(ctx context.Context, path string, onChange func(*File), onError func(error)) error {
	if onError == nil {
		onError = func(error) {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Only reload on write or create events. Editors often write via
			// rename (atomic save), so also catch fsnotify.Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			f, err := Load(path)
			if err != nil {
				onError(err)
				continue
			}

			onChange(f)

			// Re-add the file in case an atomic save replaced the inode.
			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			onError(err)
		}
	}
}
