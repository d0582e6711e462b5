// Copyright 2026 PixelPouch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package readiness

import (
	"path/filepath"

	"github.com/frostbyte73/core"
	"github.com/fsnotify/fsnotify"
)

// notifier turns filesystem events for the marker into wake-ups for the poll
// loop. It never decides readiness on its own.
type notifier struct {
	watcher *fsnotify.Watcher
	name    string
	ch      chan struct{}
	fuse    core.Fuse
}

func newNotifier(path string) (*notifier, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory, the marker itself usually does not exist yet
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	n := &notifier{
		watcher: watcher,
		name:    filepath.Base(path),
		ch:      make(chan struct{}, 1),
	}
	go n.run()
	return n, nil
}

func (n *notifier) C() <-chan struct{} {
	return n.ch
}

func (n *notifier) Stop() {
	if n.fuse.IsBroken() {
		return
	}
	n.fuse.Break()
	_ = n.watcher.Close()
}

func (n *notifier) run() {
	for {
		select {
		case <-n.fuse.Watch():
			return
		case event, ok := <-n.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != n.name {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			select {
			case n.ch <- struct{}{}:
			default:
			}
		case _, ok := <-n.watcher.Errors:
			// polling covers anything the watcher misses
			if !ok {
				return
			}
		}
	}
}
