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

package configuration

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Network is the setting that determines which Harmony
// network the suite runs against.
type Network string

const (
	// Localnet is a locally running Harmony cluster,
	// usually started by the test harness itself.
	Localnet Network = "LOCALNET"

	// Testnet is the public Harmony testnet.
	Testnet Network = "TESTNET"

	// NetworkEnv is the environment variable
	// read to determine network.
	NetworkEnv = "NETWORK"

	// ShardEndpointsEnv is an optional environment variable
	// holding a comma-separated list of shard RPC endpoints,
	// ordered by shard ID.
	ShardEndpointsEnv = "SHARD_ENDPOINTS"

	// DefaultShardEndpoints is used when ShardEndpointsEnv
	// is not populated. It matches the two-shard localnet
	// started by the test harness.
	DefaultShardEndpoints = "http://localhost:9598/,http://localhost:9596/"

	// ExplorerURLEnv is an optional environment variable
	// pointing at a Blockscout main-page transactions endpoint,
	// used by regression tests to pick a fresh transaction.
	ExplorerURLEnv = "EXPLORER_URL"

	// DefaultExplorerURL is used when ExplorerURLEnv is not populated.
	DefaultExplorerURL = "https://explorer.testnet.harmony.one/api/v2/main-page/transactions"

	// TxTimeoutEnv is an optional environment variable
	// bounding how long the suite waits for a submitted
	// transaction to be confirmed.
	TxTimeoutEnv = "TX_TIMEOUT"

	// DefaultTxTimeout is used when TxTimeoutEnv is not populated.
	DefaultTxTimeout = 20 * time.Second

	// SuiteVersion is the version of the test suite.
	SuiteVersion = "1.0.0"
)

// Configuration determines where the suite connects and how long it waits.
type Configuration struct {
	Network        Network
	ShardEndpoints []string
	ExplorerURL    string
	TxTimeout      time.Duration
}

// LoadConfiguration attempts to create a new Configuration
// using the ENVs in the environment.
func LoadConfiguration() (*Configuration, error) {
	config := &Configuration{}

	networkValue := Network(os.Getenv(NetworkEnv))
	switch networkValue {
	case Localnet:
		config.Network = Localnet
	case Testnet:
		config.Network = Testnet
	case "":
		return nil, errors.New("NETWORK must be populated")
	default:
		return nil, fmt.Errorf("%s is not a valid network", networkValue)
	}

	endpointsValue := os.Getenv(ShardEndpointsEnv)
	if len(endpointsValue) == 0 {
		endpointsValue = DefaultShardEndpoints
	}
	for _, endpoint := range strings.Split(endpointsValue, ",") {
		endpoint = strings.TrimSpace(endpoint)
		if len(endpoint) == 0 {
			return nil, fmt.Errorf("unable to parse shard endpoints %s", endpointsValue)
		}
		config.ShardEndpoints = append(config.ShardEndpoints, endpoint)
	}

	config.ExplorerURL = DefaultExplorerURL
	envExplorerURL := os.Getenv(ExplorerURLEnv)
	if len(envExplorerURL) > 0 {
		config.ExplorerURL = envExplorerURL
	}

	config.TxTimeout = DefaultTxTimeout
	envTxTimeout := os.Getenv(TxTimeoutEnv)
	if len(envTxTimeout) > 0 {
		timeout, err := time.ParseDuration(envTxTimeout)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("%w: unable to parse TX_TIMEOUT %s", err, envTxTimeout)
		}
		config.TxTimeout = timeout
	}

	return config, nil
}
