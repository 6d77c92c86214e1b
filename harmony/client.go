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
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	clientHTTPTimeout = 30 * time.Second

	maxTraceConcurrency  = int64(16)
	semaphoreTraceWeight = int64(1)

	latestBlockTag = "latest"
)

// Client queries a single shard's JSON-RPC endpoint. Typed helpers go
// through an rpc.Client and decode only the result; Raw returns the complete
// response envelope so callers can assert its exact shape.
type Client struct {
	url string

	c  JSONRPC
	hc *http.Client

	log *zap.Logger

	traceSemaphore *semaphore.Weighted
}

// NewClient creates a Client for the given shard endpoint URL.
func NewClient(url string, log *zap.Logger) (*Client, error) {
	hc := &http.Client{Timeout: clientHTTPTimeout}
	c, err := rpc.DialHTTPWithClient(url, hc)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to dial node %s", url)
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		url:            url,
		c:              c,
		hc:             hc,
		log:            log,
		traceSemaphore: semaphore.NewWeighted(maxTraceConcurrency),
	}, nil
}

// URL returns the endpoint this client talks to.
func (hc *Client) URL() string {
	return hc.url
}

// Close shuts down the RPC client connection.
func (hc *Client) Close() {
	hc.c.Close()
}

// Raw issues a JSON-RPC call and returns the complete, undecoded response
// envelope. Conformance tests use this to validate the envelope itself.
func (hc *Client) Raw(ctx context.Context, method string, params ...interface{}) ([]byte, error) {
	if params == nil {
		params = []interface{}{}
	}
	body, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hc.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "unable to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.hc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s request to %s failed", method, hc.url)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s response", method)
	}
	hc.log.Debug("rpc call",
		zap.String("endpoint", hc.url),
		zap.String("method", method),
		zap.Int("responseBytes", len(raw)),
	)
	return raw, nil
}

// BlockNumber returns the current block number of the shard (hmy_blockNumber).
func (hc *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var result hexutil.Uint64
	err := hc.c.CallContext(ctx, &result, "hmy_blockNumber")
	return uint64(result), err
}

// CurrentEpoch returns the current epoch of the shard (hmyv2_getEpoch).
func (hc *Client) CurrentEpoch(ctx context.Context) (uint64, error) {
	var epoch uint64
	err := hc.c.CallContext(ctx, &epoch, "hmyv2_getEpoch")
	return epoch, err
}

// Balance returns the latest balance of the given ONE address in atto
// (hmyv2_getBalance, decimal encoding).
func (hc *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	var balance big.Int
	if err := hc.c.CallContext(ctx, &balance, "hmyv2_getBalance", address); err != nil {
		return nil, err
	}
	return &balance, nil
}

// TransactionCount returns the latest nonce of the given ONE address
// (hmy_getTransactionCount).
func (hc *Client) TransactionCount(ctx context.Context, address string) (uint64, error) {
	var result hexutil.Uint64
	err := hc.c.CallContext(ctx, &result, "hmy_getTransactionCount", address, latestBlockTag)
	return uint64(result), err
}

// NodeMetadata returns the node's self-reported metadata (hmy_getNodeMetadata).
func (hc *Client) NodeMetadata(ctx context.Context) (*NodeMetadata, error) {
	var md NodeMetadata
	if err := hc.c.CallContext(ctx, &md, "hmy_getNodeMetadata"); err != nil {
		return nil, err
	}
	return &md, nil
}

// LatestHeader returns the latest header of the shard (hmy_latestHeader).
func (hc *Client) LatestHeader(ctx context.Context) (*LatestHeader, error) {
	var header LatestHeader
	if err := hc.c.CallContext(ctx, &header, "hmy_latestHeader"); err != nil {
		return nil, err
	}
	return &header, nil
}

// IsActiveShard reports whether the shard has produced a block within the
// given delay tolerance of the local clock.
func (hc *Client) IsActiveShard(ctx context.Context, delayTolerance time.Duration) (bool, error) {
	header, err := hc.LatestHeader(ctx)
	if err != nil {
		return false, err
	}
	delay := time.Since(time.Unix(header.UnixTime, 0))
	return delay <= delayTolerance, nil
}

// TransactionByHash fetches a plain transaction record. A nil map with a nil
// error means the transaction is not known to the shard.
func (hc *Client) TransactionByHash(ctx context.Context, hash string) (map[string]interface{}, error) {
	return hc.transactionByHash(ctx, "hmy_getTransactionByHash", hash)
}

// StakingTransactionByHash fetches a staking transaction record. A nil map
// with a nil error means the transaction is not known to the shard.
func (hc *Client) StakingTransactionByHash(ctx context.Context, hash string) (map[string]interface{}, error) {
	return hc.transactionByHash(ctx, "hmy_getStakingTransactionByHash", hash)
}

func (hc *Client) transactionByHash(ctx context.Context, method, hash string) (map[string]interface{}, error) {
	raw, err := hc.Raw(ctx, method, hash)
	if err != nil {
		return nil, err
	}
	result, err := UnpackResult(raw)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	record, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.Errorf("expected %s result to be an object, got %T", method, result)
	}
	return record, nil
}

// SendRawTransaction submits a pre-signed plain transaction and returns the
// raw response envelope. Submission errors are left to the caller: resending
// an already-seen transaction produces an RPC error that is not fatal.
func (hc *Client) SendRawTransaction(ctx context.Context, signedTx string) ([]byte, error) {
	return hc.Raw(ctx, "hmy_sendRawTransaction", signedTx)
}

// SendRawStakingTransaction submits a pre-signed staking transaction and
// returns the raw response envelope.
func (hc *Client) SendRawStakingTransaction(ctx context.Context, signedTx string) ([]byte, error) {
	return hc.Raw(ctx, "hmy_sendRawStakingTransaction", signedTx)
}

// TraceCall runs debug_traceCall with the given call arguments, block tag and
// overrides, returning the raw response envelope. Concurrent traces are
// bounded because tracing is expensive for the node.
func (hc *Client) TraceCall(
	ctx context.Context,
	args interface{},
	block string,
	overrides interface{},
) ([]byte, error) {
	if err := hc.traceSemaphore.Acquire(ctx, semaphoreTraceWeight); err != nil {
		return nil, err
	}
	defer hc.traceSemaphore.Release(semaphoreTraceWeight)

	return hc.Raw(ctx, "debug_traceCall", args, block, overrides)
}
