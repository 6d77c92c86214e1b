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

package cmd

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harmony-one/harmony-test/configuration"
	"github.com/harmony-one/harmony-test/harmony"
	"github.com/harmony-one/harmony-test/txs"
)

// shardDelayTolerance is how far behind the local clock a shard's latest
// block may be before the shard counts as inactive.
const shardDelayTolerance = 20 * time.Second

var fundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Seed every test account from the funding account",
	Long: `Submits the initial funding transactions in nonce order and waits for each
to be confirmed on-chain. Safe to re-run: resubmitting an already-known
transaction is not an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFund(cmd.Context())
	},
}

func runFund(ctx context.Context) error {
	cfg, err := configuration.LoadConfiguration()
	if err != nil {
		return err
	}
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync()

	cluster, err := harmony.NewCluster(cfg.ShardEndpoints, log)
	if err != nil {
		return err
	}
	defer cluster.Close()

	for _, client := range cluster.Shards() {
		active, err := client.IsActiveShard(ctx, shardDelayTolerance)
		if err != nil {
			return errors.Wrapf(err, "unable to reach shard at %s", client.URL())
		}
		if !active {
			return errors.Errorf("shard at %s is not actively producing blocks", client.URL())
		}
	}

	// Sender validation is skipped on purpose: the funding account sends
	// one transaction per nonce, and resubmitting a known transaction is
	// not an error.
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

	submitter := txs.NewSubmitter(cluster, cfg.TxTimeout, log)
	for i := range txs.InitialFunding {
		tx := &txs.InitialFunding[i]
		if _, err := submitter.Confirm(ctx, tx.Hash, tx.FromShard); err != nil {
			return errors.Wrapf(err, "unable to fund %s", tx.To)
		}
		color.Green("funded %s (%s)", tx.To, tx.Hash)
	}

	color.Green("all %d accounts funded", len(txs.InitialFunding))
	return nil
}
