package dirscan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/skilldex-labs/skilldex-cli/internal/logger"
)

// debounceWindow coalesces editor save bursts into one reload.
const debounceWindow = 300 * time.Millisecond

// Watch watches the corpus root and every subdirectory, emitting one
// event per burst of changes. The channel closes when ctx is cancelled.
func (s *Scanner) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create corpus watcher: %w", err)
	}

	if err := addRecursive(watcher, s.root); err != nil {
		watcher.Close()
		return nil, err
	}

	events := make(chan struct{}, 1)
	go watchLoop(ctx, watcher, events)
	return events, nil
}

// watchLoop forwards debounced filesystem events until ctx ends.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, events chan<- struct{}) {
	defer close(events)
	defer watcher.Close()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !relevantEvent(ev) {
				continue
			}
			// A created directory needs its own watch, or documents
			// added inside it later go unseen.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := watcher.Add(ev.Name); err != nil {
						logger.Warn("Watch new directory %s: %v", ev.Name, err)
					}
				}
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timerC:
					default:
					}
				}
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			select {
			case events <- struct{}{}:
			default:
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Corpus watcher error: %v", err)
		}
	}
}

// relevantEvent filters chmod noise and non-Markdown churn. Directory
// events always count because they may carry documents.
func relevantEvent(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	if strings.EqualFold(filepath.Ext(ev.Name), ".md") {
		return true
	}
	info, err := os.Stat(ev.Name)
	return err == nil && info.IsDir()
}

// addRecursive registers dir and every non-hidden subdirectory.
func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("watch corpus %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch corpus %s: %w", path, err)
		}
		return nil
	})
}
