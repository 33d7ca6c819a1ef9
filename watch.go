package tooltip

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the prefs file must be quiet before it is
// reloaded. Editors often write a file in several steps.
const reloadDebounce = 100 * time.Millisecond

// PresetWatcher reloads a FilePrefs when its file changes on disk and
// invalidates a PresetManager so the next Load sees the new values.
//
// Reloads run on the watcher's goroutine. Paths of reloaded files are sent on
// Events; failures are sent on Errors. Both channels are buffered and a
// full channel drops the value.
type PresetWatcher struct {
	Events chan string
	Errors chan error

	watcher *fsnotify.Watcher
	prefs   *FilePrefs
	manager *PresetManager
	closeCh chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

// WatchPresets starts watching the directory holding prefs' file. The file
// itself need not exist yet.
func WatchPresets(prefs *FilePrefs, manager *PresetManager) (*PresetWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tooltip: watch presets: %w", err)
	}
	dir := filepath.Dir(prefs.Path())
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("tooltip: watch presets %s: %w", dir, err)
	}

	pw := &PresetWatcher{
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		watcher: w,
		prefs:   prefs,
		manager: manager,
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go pw.run()
	return pw, nil
}

// Close stops the watcher and closes Events and Errors.
func (pw *PresetWatcher) Close() error {
	var err error
	pw.once.Do(func() {
		close(pw.closeCh)
		err = pw.watcher.Close()
		<-pw.doneCh
	})
	return err
}

func (pw *PresetWatcher) run() {
	defer func() {
		close(pw.Events)
		close(pw.Errors)
		close(pw.doneCh)
	}()

	target := filepath.Clean(pw.prefs.Path())
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case event, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			pw.reload(target)
		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			pw.sendErr(err)
		case <-pw.closeCh:
			return
		}
	}
}

func (pw *PresetWatcher) reload(name string) {
	if err := pw.prefs.Load(); err != nil {
		Logger().Warn("preset reload failed", "path", name, "err", err)
		pw.sendErr(err)
		return
	}
	pw.manager.Invalidate()
	Logger().Info("presets reloaded", "path", name)
	select {
	case pw.Events <- name:
	default:
	}
}

func (pw *PresetWatcher) sendErr(err error) {
	select {
	case pw.Errors <- err:
	default:
	}
}
