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

package rpctests

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harmony-one/harmony-test/harmony"
	"github.com/harmony-one/harmony-test/txs"
)

// stakingScope serializes every test that mutates staking state. Validator
// creation on a shared localnet cannot run in parallel.
const stakingScope = "staking"

// validatorFixture is a pre-signed create-validator transaction plus the
// fields the information queries are checked against.
type validatorFixture struct {
	tx            txs.Transaction
	validatorAddr string
	name          string
	identity      string
	blsPublicKey  string
}

// s0Validator runs with an external node on shard 0.
var s0Validator = validatorFixture{
	tx: txs.Transaction{
		From:        "one109r0tns7av5sjew7a7fkekg4fs3pw0h76pp45e",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0xf80460f1ad041a0a0e841da717fc5b7959b1a7e9a0ce9a25cd70c0ce40d5ff26",
		Nonce:       "0x0",
		SignedRawTx: "0xf9015780f90106947946f5ce1eeb290965deef936cd9154c22173efeda8474657374857465737430847465737484746573748474657374ddc988016345785d8a0000c9880c7d713b49da0000c887b1a2bc2ec500008a021e19e0c9bab24000008b084595161401484a000000f1b04f41a37a3a8d0695dd6edcc58142c6b7d98e74da5c90e79b587b3b960b6a4f5e048e6d8b8a000d77a478d44cd640270cf862b8606e1204740c90329827178361b635109e515a2334d970f44f29f3a98ff10bb351d8dd7fa03ceadcbe3e53be7b1bd0940c1e1fc58d2725e4bacf06831974edaf3291dfd5a0aa1e81c8a078e7e5e6cb9e58c750d6005afdd7b1548823804039a2118a021e19e0c9bab240000080843b9aca00835121c427a02348daabe696c4370379b9102dd85da6d4fed52f0f511ff0448a21c001ee75a7a01a67f9f40e0de02b50d5d7295f200fea7f950c1b59aa7efa8d225294c4fdbc5e",
	},
	validatorAddr: "one109r0tns7av5sjew7a7fkekg4fs3pw0h76pp45e",
	name:          "test",
	identity:      "test0",
	blsPublicKey:  "4f41a37a3a8d0695dd6edcc58142c6b7d98e74da5c90e79b587b3b960b6a4f5e048e6d8b8a000d77a478d44cd640270c",
}

// s1Validator runs with an external node on shard 1. Staking transactions
// still go to the beacon shard.
var s1Validator = validatorFixture{
	tx: txs.Transaction{
		From:        "one1nmy8quw0924fss4r9km640pldzqegjk4wv4wts",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0x37743ed5a112e54134d610b18284ab8967c926a2d53eaf23ba836431cf9bd96a",
		Nonce:       "0x0",
		SignedRawTx: "0xf9015780f90106949ec87071cf2aaa9842a32db7aabc3f6881944ad5da8474657374857465737431847465737484746573748474657374ddc988016345785d8a0000c9880c7d713b49da0000c887b1a2bc2ec500008a021e19e0c9bab24000008b084595161401484a000000f1b05e2f14abeadf0e759beb1286ed6095d9d1b2d64ad394316991161c6f95237710e0a4beda8adeaefde4844ab4c4b2bf98f862b860e8bc184c4d5779ab7ab9fb8902b157b1257b1c4fa7e39649b2d900f0415f3aec0701f89e6840d42854559620627e871862b7b5075fad456fb43bc9eb5811c5b305d1d82838332623b109fbc033fd144387bb402e3bd1626a640b58d0b3ae66098a021e19e0c9bab240000080843b9aca008351220427a0d9d4bfabdc1dd7c63c951e0353d0fdee583e9cf55dcd0253aa6eb2d1066ccb2aa0202841a6ebc536d04ca7ae2ea1d83d4d2c5d1ef1af879202613b60ee2304b27b",
	},
	validatorAddr: "one1nmy8quw0924fss4r9km640pldzqegjk4wv4wts",
	name:          "test",
	identity:      "test1",
	blsPublicKey:  "5e2f14abeadf0e759beb1286ed6095d9d1b2d64ad394316991161c6f95237710e0a4beda8adeaefde4844ab4c4b2bf98",
}

var (
	s0ValidatorOnce sync.Once
	s0ValidatorErr  error
	s1ValidatorOnce sync.Once
	s1ValidatorErr  error
)

// createdValidator makes sure the fixture's create-validator transaction is
// on chain, sending it on first use. Creation waits for the staking era and
// holds the staking scope so concurrent tests do not race the beacon pool.
func createdValidator(t *testing.T, ctx context.Context, v *validatorFixture, once *sync.Once, onceErr *error) {
	t.Helper()
	once.Do(func() {
		*onceErr = createValidator(ctx, v)
	})
	require.NoError(t, *onceErr)
}

func createValidator(ctx context.Context, v *validatorFixture) error {
	funded := false
	for i := range txs.InitialFunding {
		tx := &txs.InitialFunding[i]
		if tx.To == v.validatorAddr && tx.ToShard == harmony.BeaconShardID {
			funded = true
			break
		}
	}
	if !funded {
		return errors.Errorf(
			"validator address %s not found in set of initially funded accounts (or not funded on s%d)",
			v.validatorAddr, harmony.BeaconShardID)
	}

	record, err := cluster.Beacon().StakingTransactionByHash(ctx, v.tx.Hash)
	if err != nil {
		return err
	}
	if record != nil && record["blockNumber"] != nil {
		return nil
	}

	guard := txs.AcquireScope(stakingScope)
	defer guard.Release()

	if err := eras.WaitForStakingEra(ctx); err != nil {
		return err
	}
	record, err = submitter.SendAndConfirmStakingTransaction(ctx, &v.tx)
	if err != nil {
		return err
	}
	if hash, _ := record["hash"].(string); hash != v.tx.Hash {
		return errors.Errorf("expected staking transaction hash to be %s, got %v", v.tx.Hash, record["hash"])
	}
	return nil
}

// validatorInformationReference is the shape hmy_getValidatorInformation
// replies with. Numeric and status fields vary run to run and stay wildcards.
func validatorInformationReference(v *validatorFixture) map[string]interface{} {
	return map[string]interface{}{
		"validator": map[string]interface{}{
			"address":                v.validatorAddr,
			"name":                   v.name,
			"identity":               v.identity,
			"website":                "test",
			"security-contact":       "test",
			"details":                "test",
			"bls-public-keys":        []interface{}{v.blsPublicKey},
			"min-self-delegation":    nil,
			"max-total-delegation":   nil,
			"rate":                   nil,
			"max-rate":               nil,
			"max-change-rate":        nil,
			"update-height":          nil,
			"creation-height":        nil,
			"last-epoch-in-committee": nil,
			"delegations": []interface{}{
				map[string]interface{}{
					"delegator-address": v.validatorAddr,
					"amount":            nil,
					"reward":            nil,
					"undelegations":     []interface{}{},
				},
			},
		},
		"total-delegation":       nil,
		"currently-in-committee": nil,
		"epos-status":            "",
		"active-status":          "",
		"lifetime":               nil,
	}
}

func TestValidatorInformation(t *testing.T) {
	ctx := setup(t)
	createdValidator(t, ctx, &s0Validator, &s0ValidatorOnce, &s0ValidatorErr)

	for _, v := range []*validatorFixture{&s0Validator} {
		response := callAndUnpack(t, ctx, harmony.BeaconShardID,
			"hmy_getValidatorInformation", v.validatorAddr)
		validateStructure(t, validatorInformationReference(v), response)

		validator := asObject(t, asObject(t, response)["validator"])
		assert.Equal(t, v.validatorAddr, validator["address"])
		assert.Equal(t, v.identity, validator["identity"])
	}
}

func TestAllValidatorInformation(t *testing.T) {
	ctx := setup(t)
	createdValidator(t, ctx, &s0Validator, &s0ValidatorOnce, &s0ValidatorErr)
	createdValidator(t, ctx, &s1Validator, &s1ValidatorOnce, &s1ValidatorErr)

	// Page -1 returns every validator at once.
	response := callAndUnpack(t, ctx, harmony.BeaconShardID,
		"hmy_getAllValidatorInformation", -1)
	records := asArray(t, response)
	require.NotEmpty(t, records)

	found := map[string]bool{}
	for _, record := range records {
		validator := asObject(t, asObject(t, record)["validator"])
		found[asString(t, validator["address"])] = true
	}
	for _, v := range []*validatorFixture{&s0Validator, &s1Validator} {
		assert.True(t, found[v.validatorAddr],
			"expected validator %s in all-validator information", v.validatorAddr)
	}
}

func TestAllValidatorAddresses(t *testing.T) {
	ctx := setup(t)
	createdValidator(t, ctx, &s0Validator, &s0ValidatorOnce, &s0ValidatorErr)

	response := callAndUnpack(t, ctx, harmony.BeaconShardID, "hmy_getAllValidatorAddresses")
	validateStructure(t, []interface{}{s0Validator.validatorAddr}, response)

	addresses := asArray(t, response)
	seen := map[string]bool{}
	for _, address := range addresses {
		seen[asString(t, address)] = true
	}
	assert.True(t, seen[s0Validator.validatorAddr],
		"expected validator %s in validator address list", s0Validator.validatorAddr)
}

func TestDelegationsByValidator(t *testing.T) {
	ctx := setup(t)
	createdValidator(t, ctx, &s0Validator, &s0ValidatorOnce, &s0ValidatorErr)

	reference := []interface{}{
		map[string]interface{}{
			"validator_address": s0Validator.validatorAddr,
			"delegator_address": s0Validator.validatorAddr,
			"amount":            nil,
			"reward":            nil,
			"Undelegations":     []interface{}{},
		},
	}

	for _, namespace := range []string{"hmy", "hmyv2"} {
		response := callAndUnpack(t, ctx, harmony.BeaconShardID,
			namespace+"_getDelegationsByValidator", s0Validator.validatorAddr)
		validateStructure(t, reference, response)

		// The self-delegation from the create-validator transaction must be
		// present.
		selfDelegated := false
		for _, record := range asArray(t, response) {
			delegation := asObject(t, record)
			if delegation["delegator_address"] == s0Validator.validatorAddr {
				selfDelegated = true
			}
		}
		assert.True(t, selfDelegated,
			"expected a self delegation for validator %s", s0Validator.validatorAddr)
	}
}

func TestDelegationsByDelegator(t *testing.T) {
	ctx := setup(t)
	createdValidator(t, ctx, &s0Validator, &s0ValidatorOnce, &s0ValidatorErr)

	reference := []interface{}{
		map[string]interface{}{
			"validator_address": s0Validator.validatorAddr,
			"delegator_address": s0Validator.validatorAddr,
			"amount":            nil,
			"reward":            nil,
			"Undelegations":     []interface{}{},
		},
	}

	for _, namespace := range []string{"hmy", "hmyv2"} {
		response := callAndUnpack(t, ctx, harmony.BeaconShardID,
			namespace+"_getDelegationsByDelegator", s0Validator.validatorAddr)
		validateStructure(t, reference, response)

		records := asArray(t, response)
		require.NotEmpty(t, records)
		assert.Equal(t, s0Validator.validatorAddr,
			asObject(t, records[0])["validator_address"])
	}
}

func TestStakingTransactionByHash(t *testing.T) {
	ctx := setup(t)
	createdValidator(t, ctx, &s0Validator, &s0ValidatorOnce, &s0ValidatorErr)

	// v1 keeps quantities hex, v2 decimal.
	referenceV1 := map[string]interface{}{
		"blockHash":        "0x",
		"blockNumber":      "0x",
		"from":             s0Validator.validatorAddr,
		"timestamp":        "0x",
		"gas":              "0x",
		"gasPrice":         "0x",
		"hash":             s0Validator.tx.Hash,
		"nonce":            "0x",
		"transactionIndex": "0x",
		"type":             "CreateValidator",
		"msg":              nil,
	}
	referenceV2 := map[string]interface{}{
		"blockHash":        "0x",
		"blockNumber":      json.Number("0"),
		"from":             s0Validator.validatorAddr,
		"timestamp":        json.Number("0"),
		"gas":              json.Number("0"),
		"gasPrice":         json.Number("0"),
		"hash":             s0Validator.tx.Hash,
		"nonce":            json.Number("0"),
		"transactionIndex": json.Number("0"),
		"type":             "CreateValidator",
		"msg":              nil,
	}

	v1 := callAndUnpack(t, ctx, harmony.BeaconShardID,
		"hmy_getStakingTransactionByHash", s0Validator.tx.Hash)
	validateStructure(t, referenceV1, v1)
	assert.Equal(t, s0Validator.tx.Hash, asObject(t, v1)["hash"])

	v2 := callAndUnpack(t, ctx, harmony.BeaconShardID,
		"hmyv2_getStakingTransactionByHash", s0Validator.tx.Hash)
	validateStructure(t, referenceV2, v2)
	assert.Equal(t, s0Validator.tx.Hash, asObject(t, v2)["hash"])
}
