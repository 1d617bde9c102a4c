// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"sync"
	"sync/atomic"
)

// throttle runs at most Max funcs at a time and remembers the first
// error any of them returned.
type throttle struct {
	Max       int
	wg        sync.WaitGroup
	ch        chan struct{}
	err       atomic.Value
	setupOnce sync.Once
	errorOnce sync.Once
}

// Go waits for a free slot, then calls f in a new goroutine. Once any
// f has failed, subsequent calls to Go do nothing.
func (t *throttle) Go(f func() error) {
	t.setupOnce.Do(func() {
		if t.Max < 1 {
			t.Max = 1
		}
		t.ch = make(chan struct{}, t.Max)
	})
	if t.Err() != nil {
		return
	}
	t.wg.Add(1)
	t.ch <- struct{}{}
	go func() {
		defer func() {
			<-t.ch
			t.wg.Done()
		}()
		t.report(f())
	}()
}

func (t *throttle) report(err error) {
	if err != nil {
		t.errorOnce.Do(func() { t.err.Store(err) })
	}
}

func (t *throttle) Err() error {
	err, _ := t.err.Load().(error)
	return err
}

// Wait returns after all funcs started by Go have returned.
func (t *throttle) Wait() error {
	t.wg.Wait()
	return t.Err()
}
