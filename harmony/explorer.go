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
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ExplorerClient queries a Blockscout explorer's REST API for recently
// indexed transactions. Regression tests use it to pick a fresh transaction
// hash instead of a hard-coded archival one.
type ExplorerClient struct {
	url string
	hc  *http.Client
	log *zap.Logger
}

// NewExplorerClient creates an ExplorerClient for the given main-page
// transactions endpoint URL.
func NewExplorerClient(url string, log *zap.Logger) *ExplorerClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExplorerClient{
		url: url,
		hc:  &http.Client{Timeout: clientHTTPTimeout},
		log: log,
	}
}

// LatestTransactionHash returns the hash of the most recently indexed
// transaction. It fails when the explorer has no transactions to report.
func (ec *ExplorerClient) LatestTransactionHash(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ec.url, nil)
	if err != nil {
		return "", errors.Wrap(err, "unable to build explorer request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := ec.hc.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "explorer request to %s failed", ec.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("explorer request failed with status code %d", resp.StatusCode)
	}

	var transactions []struct {
		Hash string `json:"hash"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		return "", errors.Wrap(err, "unable to decode explorer response")
	}
	if len(transactions) == 0 {
		return "", errors.New("no transactions found")
	}

	ec.log.Debug("explorer latest transaction",
		zap.String("endpoint", ec.url),
		zap.String("hash", transactions[0].Hash),
	)
	return transactions[0].Hash, nil
}
