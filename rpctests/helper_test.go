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

// Package rpctests runs black-box conformance tests against a live Harmony
// network. The tests need a running cluster (usually a two-shard localnet)
// and are skipped unless HARMONY_RPC_TESTS is set.
package rpctests

import (
	"context"
	"encoding/json"
	"math/big"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harmony-one/harmony-test/configuration"
	"github.com/harmony-one/harmony-test/harmony"
	"github.com/harmony-one/harmony-test/txs"
)

// rpcTestsEnv gates the live suite: unset means skip.
const rpcTestsEnv = "HARMONY_RPC_TESTS"

const shardDelayTolerance = 20 * time.Second

var (
	setupOnce sync.Once
	setupErr  error

	cfg       *configuration.Configuration
	log       *zap.Logger
	cluster   *harmony.Cluster
	submitter *txs.Submitter
	eras      *txs.Eras
)

// setup initializes the shared cluster connection and seeds the test
// accounts. The funding runs once per test binary, mirroring a session-start
// hook; every test calls setup first.
func setup(t *testing.T) context.Context {
	t.Helper()
	if os.Getenv(rpcTestsEnv) == "" {
		t.Skipf("set %s to run live RPC tests", rpcTestsEnv)
	}

	setupOnce.Do(func() {
		setupErr = initSuite()
	})
	require.NoError(t, setupErr)
	return context.Background()
}

func initSuite() error {
	if os.Getenv(configuration.NetworkEnv) == "" {
		os.Setenv(configuration.NetworkEnv, string(configuration.Localnet))
	}

	var err error
	cfg, err = configuration.LoadConfiguration()
	if err != nil {
		return err
	}
	log, err = zap.NewDevelopment()
	if err != nil {
		return err
	}
	cluster, err = harmony.NewCluster(cfg.ShardEndpoints, log)
	if err != nil {
		return err
	}
	submitter = txs.NewSubmitter(cluster, cfg.TxTimeout, log)
	eras = txs.NewEras(cluster)

	return fundAccounts(context.Background())
}

// fundAccounts submits the initial funding transactions in nonce order and
// blocks until every one of them is on chain. Sender validation is skipped:
// the funding account legitimately sends more than one transaction, and
// resubmitting a known transaction is not an error.
func fundAccounts(ctx context.Context) error {
	for _, client := range cluster.Shards() {
		active, err := client.IsActiveShard(ctx, shardDelayTolerance)
		if err != nil {
			return errors.Wrapf(err, "unable to reach shard at %s", client.URL())
		}
		if !active {
			return errors.Errorf("shard at %s is not making progress", client.URL())
		}
	}

	for i := range txs.InitialFunding {
		tx := &txs.InitialFunding[i]
		raw, err := cluster.Shard(tx.FromShard).SendRawTransaction(ctx, tx.SignedRawTx)
		if err != nil {
			return errors.Wrapf(err, "unable to submit funding transaction %s", tx.Hash)
		}
		if !harmony.IsValidJSONRPC(raw) {
			return &harmony.InvalidEnvelopeError{Reason: "funding submission", Raw: raw}
		}
	}

	for i := range txs.InitialFunding {
		tx := &txs.InitialFunding[i]
		if _, err := submitter.Confirm(ctx, tx.Hash, tx.FromShard); err != nil {
			return errors.Wrapf(err, "unable to confirm funding of %s", tx.To)
		}
	}
	return nil
}

// callAndUnpack issues a raw JSON-RPC call on the given shard and asserts a
// success envelope, returning the decoded result.
func callAndUnpack(t *testing.T, ctx context.Context, shard uint32, method string, params ...interface{}) interface{} {
	t.Helper()
	raw, err := cluster.Shard(shard).Raw(ctx, method, params...)
	require.NoError(t, err)
	result, err := harmony.UnpackResult(raw)
	require.NoError(t, err)
	return result
}

// callAndUnpackError issues a raw JSON-RPC call and asserts an error
// envelope, returning the node's error object.
func callAndUnpackError(t *testing.T, ctx context.Context, shard uint32, method string, params ...interface{}) *harmony.RPCError {
	t.Helper()
	raw, err := cluster.Shard(shard).Raw(ctx, method, params...)
	require.NoError(t, err)
	rpcErr, err := harmony.UnpackError(raw)
	require.NoError(t, err)
	return rpcErr
}

// validateStructure asserts the candidate matches the reference shape.
func validateStructure(t *testing.T, reference, candidate interface{}) {
	t.Helper()
	assert.NoError(t, harmony.ValidateJSONStructure(reference, candidate))
}

// validateDict asserts the candidate object strictly matches the reference
// object's keys and kinds.
func validateDict(t *testing.T, reference, candidate interface{}) {
	t.Helper()
	assert.NoError(t, harmony.ValidateDictStructure(reference, candidate))
}

func asObject(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	record, ok := v.(map[string]interface{})
	require.True(t, ok, "expected an object, got %T", v)
	return record
}

func asArray(t *testing.T, v interface{}) []interface{} {
	t.Helper()
	list, ok := v.([]interface{})
	require.True(t, ok, "expected an array, got %T", v)
	return list
}

func asString(t *testing.T, v interface{}) string {
	t.Helper()
	s, ok := v.(string)
	require.True(t, ok, "expected a string, got %T", v)
	return s
}

// asInt64 converts a decoded JSON number (kept as json.Number by the
// unpacker) to an int64.
func asInt64(t *testing.T, v interface{}) int64 {
	t.Helper()
	num, ok := v.(json.Number)
	require.True(t, ok, "expected a number, got %T", v)
	n, err := num.Int64()
	require.NoError(t, err)
	return n
}

// hexToInt64 parses a 0x-prefixed hex quantity.
func hexToInt64(t *testing.T, s string) int64 {
	t.Helper()
	n, err := strconv.ParseInt(strings.TrimPrefix(s, "0x"), 16, 64)
	require.NoError(t, err)
	return n
}

// oneBalanceThreshold is 1 ONE in atto, the minimum balance a test sender
// must hold.
var oneBalanceThreshold = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// hexToBig parses a 0x-prefixed hex quantity too large for int64.
func hexToBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(strings.TrimPrefix(s, "0x"), 16)
	require.True(t, ok, "unable to parse hex quantity %s", s)
	return n
}
