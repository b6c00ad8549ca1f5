package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch re-reads path whenever it changes and pushes the result on
// configs. Editors commonly replace the file, so rename events are
// treated like writes. The watcher shuts down when done closes.
func Watch(path string, configs chan<- *Config, errs chan<- error, done <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("can't create watcher: %w", err)
	}
	go func() {
	loop:
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					break loop
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) > 0 {
					c, err := Load(path)
					if err != nil {
						errs <- err
						continue loop
					}
					configs <- c
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					break loop
				}
				errs <- err
			case <-done:
				break loop
			}
		}
		// ignore close error
		watcher.Close()
	}()
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return err
	}
	return nil
}
