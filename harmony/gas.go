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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	// TxGas is the intrinsic gas of any transaction.
	TxGas = uint64(21000)

	// TxDataZeroGas is the gas charged per zero byte of calldata.
	TxDataZeroGas = uint64(4)

	// TxDataNonZeroGas is the gas charged per non-zero byte of calldata.
	TxDataNonZeroGas = uint64(16)
)

// InvalidLengthError is returned when a calldata hex string has an odd number
// of digits and therefore does not describe whole bytes.
type InvalidLengthError struct {
	Calldata string
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("calldata %q has an odd number of hex digits", e.Calldata)
}

// CalldataGas returns the intrinsic gas charged for the given calldata hex
// string, with or without a "0x" prefix. Zero bytes cost TxDataZeroGas and
// non-zero bytes cost TxDataNonZeroGas, matching the node's pricing.
func CalldataGas(calldata string) (uint64, error) {
	trimmed := strings.TrimPrefix(calldata, "0x")
	if len(trimmed)%2 != 0 {
		return 0, &InvalidLengthError{Calldata: calldata}
	}
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return 0, errors.Wrapf(err, "calldata %q is not valid hex", calldata)
	}

	gas := uint64(0)
	for _, b := range raw {
		if b == 0 {
			gas += TxDataZeroGas
		} else {
			gas += TxDataNonZeroGas
		}
	}
	return gas, nil
}
