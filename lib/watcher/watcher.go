// Package watcher re-reads the config file when it is rewritten on
// disk, so colour tweaks show up without restarting.
package watcher

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kevincpp/trigl/lib/config"

	"github.com/jhenstridge/go-inotify"
)

type ConfigWatcher struct {
	path string

	// Updates delivers freshly validated configs; the frame loop
	// drains it between frames. Invalid edits are logged and skipped.
	Updates chan *config.Config
}

func New(path string) *ConfigWatcher {
	return &ConfigWatcher{
		path:    path,
		Updates: make(chan *config.Config, 1),
	}
}

// WatchInBackground starts the inotify loop in its own goroutine. It
// never touches GL state itself; applying an update is the frame
// loop's job.
func (w *ConfigWatcher) WatchInBackground() {
	go w.watch()
}

func (w *ConfigWatcher) watch() {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		w.log("Could not create inotify watcher: %s", err)
		return
	}
	defer func(watcher *inotify.Watcher) {
		err := watcher.Close()
		if err != nil {
			return
		}
	}(watcher)

	_, err = watcher.Watch(w.path)
	if err != nil {
		w.log("Could not start inotify watcher: %s", err)
		return
	}

	for ev := range watcher.Event {
		if ev.Mask&inotify.IN_CLOSE_WRITE != 0 {
			w.log("Reloading config due to inotify event")
			time.Sleep(100 * time.Millisecond)

			cfg, err := config.Parse(w.path)
			if err != nil {
				w.log("Ignoring config edit: %s", err)
				continue
			}

			// drop a stale pending update in favour of this one
			select {
			case <-w.Updates:
			default:
			}
			w.Updates <- cfg
		}
	}
}

func (w *ConfigWatcher) log(msg string, args ...interface{}) {
	slog.Info(fmt.Sprintf(msg, args...), slog.String("module", "watcher"))
}
