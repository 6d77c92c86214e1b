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
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const addressByteLength = 20

// IsValidAddress reports whether s is a well-formed bech32 ONE address:
// "one" human-readable part, valid checksum, and a 20-byte payload.
func IsValidAddress(s string) bool {
	hrp, data, err := bech32.Decode(s)
	if err != nil || hrp != AddressHRP {
		return false
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return false
	}
	return len(raw) == addressByteLength
}
