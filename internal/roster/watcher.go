package roster

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 500 * time.Millisecond

// Watcher re-imports a roster JSON file into the store whenever it
// changes on disk. Events are debounced so editors that write in bursts
// trigger one reload.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	store    *Store
	logf     func(string, ...any)
	onReload func(int)

	mu       sync.Mutex
	debounce *time.Timer
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// WatchFile watches path and imports it into store on change. logf
// receives diagnostics and may be nil; onReload is called with the member
// count after each successful import and may be nil.
func WatchFile(path string, store *Store, logf func(string, ...any), onReload func(int)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors and fetchers replace files by rename,
	// which drops a watch on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	if logf == nil {
		logf = func(string, ...any) {}
	}
	w := &Watcher{
		watcher:  fw,
		path:     path,
		store:    store,
		logf:     logf,
		onReload: onReload,
		stopCh:   make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logf("roster watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return
	}
	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
		w.scheduleReload()
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(reloadDebounce, func() {
		select {
		case <-w.stopCh:
			return
		default:
		}

		count, err := w.store.ImportFile(w.path)
		if err != nil {
			w.logf("roster reload failed: %v", err)
			return
		}
		w.logf("roster reloaded: %d members", count)
		if w.onReload != nil {
			w.onReload(count)
		}
	})
}

// Close stops the watcher and waits for its loop to exit.
func (w *Watcher) Close() error {
	close(w.stopCh)

	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
		w.debounce = nil
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
