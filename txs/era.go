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
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/harmony-one/harmony-test/harmony"
)

const (
	eraPollMin = 500 * time.Millisecond
	eraPollMax = 1500 * time.Millisecond

	// crossShardEpoch is the epoch every shard must reach before
	// cross-shard transactions are accepted.
	crossShardEpoch = uint64(1)
)

// Eras tracks which protocol eras the network has entered. An era is
// monotonic: once observed, it is cached and never re-checked, so tests can
// gate on it cheaply.
type Eras struct {
	cluster *harmony.Cluster

	mu         sync.Mutex
	crossShard bool
	staking    bool
}

// NewEras creates an era tracker for the given cluster.
func NewEras(cluster *harmony.Cluster) *Eras {
	return &Eras{cluster: cluster}
}

// Snapshot is the era view tests gate on.
type Snapshot struct {
	CrossShard bool
	Staking    bool
}

// IsCrossShardEra reports whether every shard has reached the cross-shard
// transaction epoch. The result is cached once true.
func (e *Eras) IsCrossShardEra(ctx context.Context) (bool, error) {
	e.mu.Lock()
	cached := e.crossShard
	e.mu.Unlock()
	if cached {
		return true, nil
	}

	reached, err := e.allShardsAtEpoch(ctx, crossShardEpoch)
	if err != nil || !reached {
		return false, err
	}
	e.mu.Lock()
	e.crossShard = true
	e.mu.Unlock()
	return true, nil
}

// IsStakingEra reports whether every shard has reached the beacon chain's
// pre-staking epoch. The result is cached once true.
func (e *Eras) IsStakingEra(ctx context.Context) (bool, error) {
	e.mu.Lock()
	cached := e.staking
	e.mu.Unlock()
	if cached {
		return true, nil
	}

	md, err := e.cluster.Beacon().NodeMetadata(ctx)
	if err != nil {
		return false, errors.Wrap(err, "unable to get beacon node metadata")
	}
	reached, err := e.allShardsAtEpoch(ctx, md.ChainConfig.PrestakingEpoch)
	if err != nil || !reached {
		return false, err
	}
	e.mu.Lock()
	e.staking = true
	e.mu.Unlock()
	return true, nil
}

// WaitForCrossShardEra blocks until the cross-shard era is reached or ctx is
// done. Polls are randomly spaced to stop burst spam of RPC calls.
func (e *Eras) WaitForCrossShardEra(ctx context.Context) error {
	return e.wait(ctx, e.IsCrossShardEra)
}

// WaitForStakingEra blocks until the staking era is reached or ctx is done.
func (e *Eras) WaitForStakingEra(ctx context.Context) error {
	return e.wait(ctx, e.IsStakingEra)
}

// Current returns the era snapshot as of now.
func (e *Eras) Current(ctx context.Context) (Snapshot, error) {
	crossShard, err := e.IsCrossShardEra(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	staking, err := e.IsStakingEra(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{CrossShard: crossShard, Staking: staking}, nil
}

func (e *Eras) wait(ctx context.Context, check func(context.Context) (bool, error)) error {
	for {
		reached, err := check(ctx)
		if err != nil {
			return err
		}
		if reached {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(randomDelay(eraPollMin, eraPollMax)):
		}
	}
}

func (e *Eras) allShardsAtEpoch(ctx context.Context, threshold uint64) (bool, error) {
	for _, client := range e.cluster.Shards() {
		epoch, err := client.CurrentEpoch(ctx)
		if err != nil {
			return false, errors.Wrapf(err, "unable to get epoch from %s", client.URL())
		}
		if epoch < threshold {
			return false, nil
		}
	}
	return true, nil
}
