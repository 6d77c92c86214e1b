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
	"fmt"
	"math/big"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/harmony-one/harmony-test/harmony"
)

const (
	confirmPollMin = 200 * time.Millisecond
	confirmPollMax = 500 * time.Millisecond
)

// oneInAtto is 1 ONE, the minimum balance a sender must hold.
var oneInAtto = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// ConfirmationTimeoutError is returned when a submitted transaction does not
// land in a block within the configured timeout.
type ConfirmationTimeoutError struct {
	Hash    string
	Timeout time.Duration
}

func (e *ConfirmationTimeoutError) Error() string {
	return fmt.Sprintf("could not confirm transaction %s on-chain within %s", e.Hash, e.Timeout)
}

// Submitter submits pre-signed transactions to a cluster and waits for their
// confirmation.
type Submitter struct {
	cluster *harmony.Cluster
	timeout time.Duration
	log     *zap.Logger
}

// NewSubmitter creates a Submitter confirming within the given timeout.
func NewSubmitter(cluster *harmony.Cluster, timeout time.Duration, log *zap.Logger) *Submitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Submitter{cluster: cluster, timeout: timeout, log: log}
}

// ValidateFromAddress asserts that address is a valid sender for a test
// transaction on the given shard: a well-formed ONE address holding at least
// 1 ONE. For plain transactions the sender must not have sent one before,
// which would break the one-transaction-per-account invariant.
func (s *Submitter) ValidateFromAddress(ctx context.Context, address string, shard uint32, isStaking bool) error {
	if !harmony.IsValidAddress(address) {
		return errors.Errorf("%s is an invalid ONE address", address)
	}
	client := s.cluster.Shard(shard)
	if client == nil {
		return errors.Errorf("shard %d is not part of the cluster", shard)
	}

	balance, err := client.Balance(ctx, address)
	if err != nil {
		return errors.Wrapf(err, "unable to get balance of %s", address)
	}
	if balance.Cmp(oneInAtto) < 0 {
		return errors.Errorf("account %s does not have at least 1 ONE on shard %d", address, shard)
	}

	if !isStaking {
		nonce, err := client.TransactionCount(ctx, address)
		if err != nil {
			return errors.Wrapf(err, "unable to get nonce of %s", address)
		}
		if nonce != 0 {
			return errors.Errorf(
				"account %s has already sent a transaction, breaking the txs invariant", address,
			)
		}
	}
	return nil
}

// SendTransaction submits tx on its source shard. With confirmSubmission the
// returned transaction hash must match the fixture's; otherwise only the
// envelope is checked, since resending an already-known transaction yields a
// non-fatal RPC error.
func (s *Submitter) SendTransaction(ctx context.Context, tx *Transaction, confirmSubmission bool) error {
	if err := s.ValidateFromAddress(ctx, tx.From, tx.FromShard, false); err != nil {
		return err
	}

	client := s.cluster.Shard(tx.FromShard)
	raw, err := client.SendRawTransaction(ctx, tx.SignedRawTx)
	if err != nil {
		return errors.Wrapf(err, "unable to submit transaction %s", tx.Hash)
	}
	return s.checkSubmission(raw, tx.Hash, confirmSubmission)
}

// SendStakingTransaction submits tx on the beacon shard, which is the only
// shard that processes staking transactions.
func (s *Submitter) SendStakingTransaction(ctx context.Context, tx *Transaction, confirmSubmission bool) error {
	raw, err := s.cluster.Beacon().SendRawStakingTransaction(ctx, tx.SignedRawTx)
	if err != nil {
		return errors.Wrapf(err, "unable to submit staking transaction %s", tx.Hash)
	}
	return s.checkSubmission(raw, tx.Hash, confirmSubmission)
}

func (s *Submitter) checkSubmission(raw []byte, wantHash string, confirmSubmission bool) error {
	if !confirmSubmission {
		if !harmony.IsValidJSONRPC(raw) {
			return &harmony.InvalidEnvelopeError{Reason: "submission response", Raw: raw}
		}
		return nil
	}
	result, err := harmony.UnpackResult(raw)
	if err != nil {
		return err
	}
	hash, ok := result.(string)
	if !ok || hash != wantHash {
		return errors.Errorf("expected submitted transaction to get tx hash of %s, got %v", wantHash, result)
	}
	return nil
}

// SendAndConfirmTransaction submits tx without checking the submission
// result, then polls until the transaction lands in a block. Submission
// errors are deliberately swallowed: resending an initial transaction is
// fine, and genuinely failed transactions are caught by the confirmation
// timeout instead.
func (s *Submitter) SendAndConfirmTransaction(ctx context.Context, tx *Transaction) (map[string]interface{}, error) {
	if err := s.SendTransaction(ctx, tx, false); err != nil {
		return nil, err
	}
	client := s.cluster.Shard(tx.FromShard)
	return s.confirm(ctx, tx.Hash, s.timeout, func(ctx context.Context) (map[string]interface{}, error) {
		return client.TransactionByHash(ctx, tx.Hash)
	})
}

// SendAndConfirmStakingTransaction submits a staking transaction and polls
// the beacon shard until it lands in a block. Staking confirmation gets twice
// the plain-transaction timeout, matching the slower beacon inclusion.
func (s *Submitter) SendAndConfirmStakingTransaction(ctx context.Context, tx *Transaction) (map[string]interface{}, error) {
	if err := s.SendStakingTransaction(ctx, tx, false); err != nil {
		return nil, err
	}
	return s.confirm(ctx, tx.Hash, 2*s.timeout, func(ctx context.Context) (map[string]interface{}, error) {
		return s.cluster.Beacon().StakingTransactionByHash(ctx, tx.Hash)
	})
}

// Confirm polls the given shard until the transaction with the given hash is
// in a block. It is used for transactions submitted out of band, such as
// cross-shard receipts landing on the destination shard.
func (s *Submitter) Confirm(ctx context.Context, hash string, shard uint32) (map[string]interface{}, error) {
	client := s.cluster.Shard(shard)
	if client == nil {
		return nil, errors.Errorf("shard %d is not part of the cluster", shard)
	}
	return s.confirm(ctx, hash, s.timeout, func(ctx context.Context) (map[string]interface{}, error) {
		return client.TransactionByHash(ctx, hash)
	})
}

func (s *Submitter) confirm(
	ctx context.Context,
	hash string,
	timeout time.Duration,
	fetch func(context.Context) (map[string]interface{}, error),
) (map[string]interface{}, error) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		record, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if record != nil && record["blockNumber"] != nil {
			s.log.Debug("transaction confirmed", zap.String("hash", hash))
			return record, nil
		}
		// Random to stop burst spam of RPC calls.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(randomDelay(confirmPollMin, confirmPollMax)):
		}
	}
	return nil, &ConfirmationTimeoutError{Hash: hash, Timeout: timeout}
}

func randomDelay(min, max time.Duration) time.Duration {
	return min + time.Duration(rand.Int63n(int64(max-min)))
}
