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

// Package txs holds the pre-signed transactions the suite runs on, and the
// machinery to submit and confirm them.
//
// INVARIANT: each account sends at most one plain transaction per shard,
// except the funding account behind InitialFunding.
package txs

// Transaction is one pre-signed transaction fixture. Amount is in ONE,
// Nonce is the hex-encoded sender nonce, SignedRawTx the RLP-encoded signed
// payload ready for hmy_sendRawTransaction.
type Transaction struct {
	From        string
	To          string
	Amount      string
	FromShard   uint32
	ToShard     uint32
	Hash        string
	Nonce       string
	SignedRawTx string
}

// InitialFunding seeds every test account from the funding account.
//
// ORDER MATTERS: tx n cannot be sent without tx n-1 being sent first due to
// nonce. Only exception to the one-transaction-per-account invariant.
var InitialFunding = []Transaction{
	{
		// Used by: account tests
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one1v92y4v2x4q27vzydf8zq62zu9g0jl6z0lx2c8q",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0x5718a2fda967f051611ccfaf2230dc544c9bdd388f5759a42b2fb0847fc8d759",
		Nonce:       "0x0",
		SignedRawTx: "0xf86f80843b9aca0082520880809461544ab146a815e6088d49c40d285c2a1f2fe84f8a152d02c7e14af68000008028a076b6130bc018cedb9f8891343fd8982e0d7f923d57ea5250b8bfec9129d4ae22a00fbc01c988d72235b4c71b21ce033d4fc5f82c96710b84685de0578cff075a0a",
	},
	{
		// Used by: cross-shard transaction tests
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one1ue25q6jk0xk3dth4pxur9e742vcqfwulhwqh45",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0x28c17c0a2736ba16930ad274e3ecbebea930e82553c7755e0b94c7d7cd1fd6f2",
		Nonce:       "0x1",
		SignedRawTx: "0xf86f01843b9aca00825208808094e655406a5679ad16aef509b832e7d5533004bb9f8a152d02c7e14af68000008028a0c50737adb507870c2b6f3d9966f096526761730c6b80bd702c114e24aa094ac1a063c0463619123dbe7541687fba70952dab62ba639199750b04cd8902ccb6d615",
	},
	{
		// Used by: pending cx receipt tests
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one19l4hghvh40fyldxfznn0a3ss7d5gk0dmytdql4",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0x6bc3acc3b349edac6d3f563e78990a4566192d6fdab93814ea29ae9157d4085b",
		Nonce:       "0x2",
		SignedRawTx: "0xf86f02843b9aca008252088080942feb745d97abd24fb4c914e6fec610f3688b3dbb8a152d02c7e14af68000008027a0abfa0480b878ca798a17e88251109761ed1d281f1da92faa21b6e456ad558774a016b460ec602b08f06a2845478269b1014b5491bdc0993988ca39f689b2405992",
	},
	{
		// Used by: v1 pending transaction tests
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one1twhzfc2wr4j5ka7gs9pmllpnrdyaskcl5lq8ye",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0xdcd7870635acd3fb1e962c76f2e3cddbeb421238fcf702e3d1fa42ca6de434b2",
		Nonce:       "0x3",
		SignedRawTx: "0xf86f03843b9aca008252088080945bae24e14e1d654b77c88143bffc331b49d85b1f8a152d02c7e14af68000008027a0356e6bfd8718c7102f0d94fdb8be1cba090daf44c71086f9817de3b264cb54c2a052c8781691dce63997ca4f765adec7b351a9a23a80a97bcf238ccbdf8a71f71f",
	},
	{
		// Used by: v2 pending transaction tests
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one1u57rlv5q82deja6ew2l9hdy7ag3dwnw57x8s9t",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0xa8a678243fffcfc16ff8f35315094aafc029175b962ec595f7c71efce4a47c8a",
		Nonce:       "0x4",
		SignedRawTx: "0xf86f04843b9aca00825208808094e53c3fb2803a9b99775972be5bb49eea22d74dd48a152d02c7e14af68000008028a0d2f061075852ee5b2572b18e8879d5656e8660113d88f2b806961b25312e5ae1a078004b6b332f09b1a53c3cbad6fd427fa57b0b368ae2126e458b9622d1668edf",
	},
	{
		// Used by: v1 raw transaction submission tests
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one1p5x4t7mvd94jn5awxmhlvgqmlazx5egzz7rveg",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0x1d0d4111d9f5d2d28e85d5ebd1460944e8d328df45a2bbfae1de309c3a6cf632",
		Nonce:       "0x5",
		SignedRawTx: "0xf86f05843b9aca008252088080940d0d55fb6c696b29d3ae36eff6201bff446a65028a152d02c7e14af68000008027a06dee240ff456073c11fd093e24ba29eda88e00cd710c05d83c855cce1aff47a2a06bf74d512215a2ec02fb5034a1e344901706387e72ce08b5a37a2f434717f859",
	},
	{
		// Used by: v2 raw transaction submission tests
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one13lu674f3jkfk2qhsngfc2vhcf372wprctdjvgu",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0x855e230866377e00a56ae6958c8acfe6f0d19f8e71a0c323d92794aeda5c6bc8",
		Nonce:       "0x6",
		SignedRawTx: "0xf86f06843b9aca008252088080948ff9af553195936502f09a138532f84c7ca704788a152d02c7e14af68000008028a01a4c6dbc9177cf9057de09d4f654950a38aba83e98502d59b478f899b196c4aaa00652c34a53082aee876713954ce70a21288c3727c29fb9c729ce10f19d106370",
	},
	{
		// Used by: transaction error sink tests
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one1ujsjs4mhds75xnws0yx0v8l2rvyp67arwzqrvz",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0x718a7299e1591bd2eb7bea7de6efc044de3d1a6ce2d96e85b17f892f118d2455",
		Nonce:       "0x7",
		SignedRawTx: "0xf86f07843b9aca00825208808094e4a12857776c3d434dd0790cf61fea1b081d7ba38a152d02c7e14af68000008028a0cdb715640768dbdbaa06b98ca8c346717b3c753a2ad70de81330f52cd6a1cbc1a05ced9fe853996e05216783fdab83ca91b6010605ad68d0153596b0fc35e8c40b",
	},
	{
		// Used by: contract deployment tests
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one156wkx832t0nxnaq6hxawy4c3udmnpzzddds60a",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0x6674d1223fdff897d74b3483da2086f8370da747e93b6f6c32fe59f518c2b777",
		Nonce:       "0x8",
		SignedRawTx: "0xf86f08843b9aca00825208808094a69d631e2a5be669f41ab9bae25711e37730884d8a152d02c7e14af68000008027a03f1c0d190eec991d407848227cc0f4f75ba157f187f539dfa6050dd1cfa253a4a00cbc0eb6f81f3a0049db90496c62598d267c5c82b203ab12e969e49012d32be8",
	},
	{
		// Used by: shard 0 validator creation
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one109r0tns7av5sjew7a7fkekg4fs3pw0h76pp45e",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0x5def784f5b9a8683e7c98b202a0e2ed303f84224900f95775d92be54e1bcb504",
		Nonce:       "0x9",
		SignedRawTx: "0xf86f09843b9aca008252088080947946f5ce1eeb290965deef936cd9154c22173efe8a152d02c7e14af68000008027a0c991fab63ede6b83f7872020ac54fa9ba900cce8aa6b0dc07dbca1bfb840c97da029795861de7c6d839ce54903f960e3326f03a84c90deed384f7dcfc8d9703a16",
	},
	{
		// Used by: shard 1 validator creation
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one1nmy8quw0924fss4r9km640pldzqegjk4wv4wts",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0xf66f6cb67ad9e1622ca77d50ec52a25be37bcd601606d7530711e58aca891245",
		Nonce:       "0xa",
		SignedRawTx: "0xf86f0a843b9aca008252088080949ec87071cf2aaa9842a32db7aabc3f6881944ad58a152d02c7e14af68000008027a0efa56eae2e0457010ad57e46cf4332158e670aadee8586c586f74047fb6e4211a038827d2e57a50ca7b311c06d90426ddad659d68e598342f94a1b430f2adb39da",
	},
	{
		// Used by: delegation and undelegation tests
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one1v895jcvudcktswcmg2sldvmxvtvvdj2wuxj3hx",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0xb6d3a97d472a5b0259de0cd3ad0d41c6cc7e7b98ee0c314c29d09261a92e2354",
		Nonce:       "0xb",
		SignedRawTx: "0xf86f0b843b9aca0082520880809461cb49619c6e2cb83b1b42a1f6b36662d8c6c94e8a152d02c7e14af68000008028a00e1b96e61e8bb4c4bad89ed40d6cc43fcf003251fa5e9ed1cdf63e2a38ca110ca0675a1964ad3c32a2946f9bc86984b8910f81f752e2ef0ef9b1eb4cf9aec1032d",
	},
	{
		// Used by: v1 pending staking transaction tests
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one13v9m45m6yk9qmmcgyq603ucy0wdw9lfsxzsj9d",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0x85c7de662be7bbf0fd3be0bf8d0c5f910c4fd8d54ff8bc023725d09a9769fd6e",
		Nonce:       "0xc",
		SignedRawTx: "0xf86f0c843b9aca008252088080948b0bbad37a258a0def082034f8f3047b9ae2fd308a152d02c7e14af68000008027a073fc972cfce2875a6ed11b9db264f4ceaf5ef87a073955f08af18d1d6c2a914ba07bcea61a65ad903a42ba06e369eedd784049b789058279c2b13a5c9065df2a76",
	},
	{
		// Used by: v2 pending staking transaction tests
		From:        "one1zksj3evekayy90xt4psrz8h6j2v3hla4qwz4ur",
		To:          "one13muqj27fcd59gfrv7wzvuaupgkkwvwzlxun0ce",
		Amount:      "100000",
		FromShard:   0,
		ToShard:     0,
		Hash:        "0xffe73340c5a6e411c74fb29875dcb84df3d9c36fbbdb16cd3c47a3399ff8b0b9",
		Nonce:       "0xd",
		SignedRawTx: "0xf86f0d843b9aca008252088080948ef8092bc9c36854246cf384ce778145ace6385f8a152d02c7e14af68000008027a0269c69eef2be5633b297a93efa20bf6bf0e56c8dc9eb869a4af6864fcfc28c75a0188df392c87d1552cff6f54736cf6811efed7ea3464db4c0618de1bce6163be6",
	},
}
