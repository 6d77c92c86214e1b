// Copyright 2024 Harmony Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package txs

import (
	"sync"
	"time"
)

const (
	releaseDelayMin = 500 * time.Millisecond
	releaseDelayMax = 1000 * time.Millisecond
)

var (
	scopeMu     sync.Mutex
	scopedLocks = map[string]*sync.Mutex{}
)

// Guard holds a named scope lock until Release is called.
type Guard struct {
	mu   *sync.Mutex
	once sync.Once
}

// Release unlocks the scope after a short random delay, so tests that share
// the scope do not hammer the node back to back. Safe to call more than once.
func (g *Guard) Release() {
	g.once.Do(func() {
		// Random to stop burst spam of RPC calls.
		time.Sleep(randomDelay(releaseDelayMin, releaseDelayMax))
		g.mu.Unlock()
	})
}

// AcquireScope blocks until the named scope lock is held. Tests that mutate
// shared chain state (for example staking flows on a common validator) take
// the same scope so they never run in parallel.
func AcquireScope(scope string) *Guard {
	scopeMu.Lock()
	mu, ok := scopedLocks[scope]
	if !ok {
		mu = &sync.Mutex{}
		scopedLocks[scope] = mu
	}
	scopeMu.Unlock()

	mu.Lock()
	return &Guard{mu: mu}
}
