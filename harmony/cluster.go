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

package harmony

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Cluster holds one Client per shard, indexed by shard ID. The endpoint
// order passed to NewCluster must match the cluster's shard numbering.
type Cluster struct {
	shards []*Client
}

// NewCluster dials every shard endpoint. On failure, already-opened
// connections are closed before returning.
func NewCluster(urls []string, log *zap.Logger) (*Cluster, error) {
	if len(urls) == 0 {
		return nil, errors.New("at least one shard endpoint is required")
	}

	shards := make([]*Client, 0, len(urls))
	for i, url := range urls {
		c, err := NewClient(url, log)
		if err != nil {
			for _, opened := range shards {
				opened.Close()
			}
			return nil, errors.Wrapf(err, "unable to create client for shard %d", i)
		}
		shards = append(shards, c)
	}
	return &Cluster{shards: shards}, nil
}

// Shard returns the client for the given shard ID, or nil when the shard is
// not part of the cluster.
func (cl *Cluster) Shard(id uint32) *Client {
	if int(id) >= len(cl.shards) {
		return nil
	}
	return cl.shards[id]
}

// Beacon returns the client for the beacon shard.
func (cl *Cluster) Beacon() *Client {
	return cl.shards[BeaconShardID]
}

// Shards returns the clients of all shards, ordered by shard ID.
func (cl *Cluster) Shards() []*Client {
	return cl.shards
}

// NumShards returns the number of shards in the cluster.
func (cl *Cluster) NumShards() int {
	return len(cl.shards)
}

// Close shuts down all shard connections.
func (cl *Cluster) Close() {
	for _, c := range cl.shards {
		c.Close()
	}
}
