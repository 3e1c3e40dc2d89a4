// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package file

import (
	"context"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watcher reports changes to a fixed set of files.  Changes arriving in quick
// succession (e.g. several writes from a single save) are batched together, and
// reported only once no further change has arrived for the debounce period.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	// Absolute paths of watched files.
	files map[string]bool
}

// NewWatcher constructs a watcher for the given files.  The enclosing
// directories are watched rather than the files themselves, since many editors
// save by replacing a file.
func NewWatcher(debounce time.Duration, filenames ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	//
	w := &Watcher{fs, debounce, make(map[string]bool)}
	//
	for _, name := range filenames {
		abs, err := filepath.Abs(name)
		if err != nil {
			return nil, w.closeWith(err)
		}
		//
		w.files[abs] = true
		//
		if !slices.Contains(fs.WatchList(), filepath.Dir(abs)) {
			if err := fs.Add(filepath.Dir(abs)); err != nil {
				return nil, w.closeWith(err)
			}
		}
	}
	//
	return w, nil
}

// Run reports batches of changed files (as sorted absolute paths) until the
// context is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, onChange func([]string)) error {
	var (
		pending = make(map[string]bool)
		timer   = time.NewTimer(w.debounce)
	)
	//
	timer.Stop()
	//
	defer timer.Stop()
	//
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			} else if name, ok := w.relevant(event); ok {
				log.Debugf("%s: %s", name, event.Op)
				pending[name] = true
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			//
			log.Warnf("file watcher: %s", err)
		case <-timer.C:
			if len(pending) > 0 {
				changed := make([]string, 0, len(pending))
				//
				for name := range pending {
					changed = append(changed, name)
				}
				//
				slices.Sort(changed)
				clear(pending)
				onChange(changed)
			}
		}
	}
}

// Close stops watching for changes.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// relevant determines whether an event affects the contents of a watched file.
func (w *Watcher) relevant(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return "", false
	}
	//
	abs, err := filepath.Abs(event.Name)
	//
	return abs, err == nil && w.files[abs]
}

func (w *Watcher) closeWith(err error) error {
	if cerr := w.fs.Close(); cerr != nil {
		log.Debugf("closing file watcher: %s", cerr)
	}
	//
	return err
}
