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
	"context"

	"github.com/ethereum/go-ethereum/rpc"
)

const (
	// NamespaceV1 is the hex-encoded JSON-RPC method family.
	NamespaceV1 = "hmy"

	// NamespaceV2 is the decimal-encoded JSON-RPC method family.
	NamespaceV2 = "hmyv2"

	// NamespaceEth is the Ethereum-compatible JSON-RPC method family.
	NamespaceEth = "eth"

	// AddressHRP is the bech32 human-readable prefix of a ONE address.
	AddressHRP = "one"

	// BeaconShardID is the shard that processes staking transactions.
	BeaconShardID = uint32(0)
)

// Namespaces lists every method family the suite exercises.
var Namespaces = []string{NamespaceV1, NamespaceV2, NamespaceEth}

// Method builds the fully-qualified RPC method name for a namespace,
// e.g. Method(NamespaceV2, "getBalance") == "hmyv2_getBalance".
func Method(namespace, name string) string {
	return namespace + "_" + name
}

// JSONRPC is the interface for accessing a Harmony node's JSON-RPC endpoint.
type JSONRPC interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
	BatchCallContext(ctx context.Context, b []rpc.BatchElem) error
	Close()
}

// NodeMetadata is the response of {hmy,hmyv2}_getNodeMetadata. Only the
// fields the suite relies on are decoded.
type NodeMetadata struct {
	Network     string          `json:"network"`
	ShardID     uint32          `json:"shard-id"`
	IsLeader    bool            `json:"is-leader"`
	Role        string          `json:"role"`
	ChainConfig NodeChainConfig `json:"chain-config"`
}

// NodeChainConfig is the chain-config section of the node metadata.
type NodeChainConfig struct {
	ChainID         int64  `json:"chain-id"`
	CrossTxEpoch    uint64 `json:"cross-tx-epoch"`
	CrossLinkEpoch  uint64 `json:"cross-link-epoch"`
	StakingEpoch    uint64 `json:"staking-epoch"`
	PrestakingEpoch uint64 `json:"prestaking-epoch"`
}

// LatestHeader is the response of {hmy,hmyv2}_latestHeader. Only the fields
// the suite relies on are decoded.
type LatestHeader struct {
	BlockHash   string `json:"blockHash"`
	BlockNumber uint64 `json:"blockNumber"`
	ShardID     uint32 `json:"shardID"`
	Epoch       uint64 `json:"epoch"`
	UnixTime    int64  `json:"unixtime"`
}
