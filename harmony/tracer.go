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

// CallArgs is the transaction-shaped first parameter of debug_traceCall.
// Fields are strings rather than typed addresses so that negative tests can
// submit malformed values and assert the node's exact rejection.
type CallArgs struct {
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Gas      string `json:"gas,omitempty"`
	GasPrice string `json:"gasPrice,omitempty"`
	Value    string `json:"value,omitempty"`
	Data     string `json:"data,omitempty"`
}

// BlockOverrides alters the block context a trace executes in.
type BlockOverrides struct {
	Number       string `json:"number,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
	Timestamp    string `json:"timestamp,omitempty"`
	GasLimit     string `json:"gasLimit,omitempty"`
	FeeRecipient string `json:"feeRecipient,omitempty"`
}

// StateOverride alters one account's state for the duration of a trace.
type StateOverride struct {
	Balance string `json:"balance,omitempty"`
	Nonce   string `json:"nonce,omitempty"`
	Code    string `json:"code,omitempty"`
}

// TraceOverrides is the third parameter of debug_traceCall. StateOverrides is
// keyed by hex account address. Tracer selects an alternative tracer such as
// "callTracer"; when empty the node produces opcode-level struct logs.
type TraceOverrides struct {
	BlockOverrides *BlockOverrides          `json:"blockOverrides,omitempty"`
	StateOverrides map[string]StateOverride `json:"stateOverrides,omitempty"`
	Tracer         string                   `json:"tracer,omitempty"`
	Timeout        string                   `json:"timeout,omitempty"`
}

// StructLog is one opcode step of a struct-log trace.
type StructLog struct {
	PC              uint64 `json:"pc"`
	Op              string `json:"op"`
	CallerAddress   string `json:"callerAddress"`
	ContractAddress string `json:"contractAddress"`
	Gas             uint64 `json:"gas"`
	GasCost         uint64 `json:"gasCost"`
	Depth           int    `json:"depth"`
}

// TraceResult is the struct-log result of debug_traceCall.
type TraceResult struct {
	Gas         uint64      `json:"gas"`
	Failed      bool        `json:"failed"`
	ReturnValue string      `json:"returnValue"`
	StructLogs  []StructLog `json:"structLogs"`
}

// ExecutionGas sums the gas cost of every traced opcode.
func (r *TraceResult) ExecutionGas() uint64 {
	total := uint64(0)
	for _, log := range r.StructLogs {
		total += log.GasCost
	}
	return total
}

// CallTraceResult is the result of debug_traceCall under the callTracer.
type CallTraceResult struct {
	Type    string `json:"type"`
	From    string `json:"from"`
	To      string `json:"to"`
	Value   string `json:"value"`
	Gas     string `json:"gas"`
	GasUsed string `json:"gasUsed"`
	Input   string `json:"input"`
	Output  string `json:"output"`
	Time    string `json:"time"`
}
