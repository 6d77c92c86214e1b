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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// ErrEmptyResponse is returned when the node sent no response body at all.
var ErrEmptyResponse = errors.New("empty JSON-RPC response")

// InvalidEnvelopeError is returned when a response body is not a well-formed
// JSON-RPC 2.0 envelope. The raw body is carried for diagnosis.
type InvalidEnvelopeError struct {
	Reason string
	Raw    []byte
}

func (e *InvalidEnvelopeError) Error() string {
	return fmt.Sprintf("invalid JSON-RPC response (%s): %s", e.Reason, e.Raw)
}

// UnexpectedEnvelopeError is returned when a well-formed envelope does not
// match the caller's expectation (error requested but result received, or
// vice versa).
type UnexpectedEnvelopeError struct {
	ExpectError bool
	Raw         []byte
}

func (e *UnexpectedEnvelopeError) Error() string {
	want := "result"
	if e.ExpectError {
		want = "error"
	}
	return fmt.Sprintf("expected %s in RPC response: %s", want, e.Raw)
}

// RPCError is the error object of a JSON-RPC 2.0 response.
type RPCError struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// IsValidJSONRPC reports whether raw is a well-formed JSON-RPC 2.0 response,
// carrying either a result or a valid error object.
func IsValidJSONRPC(raw []byte) bool {
	if len(bytes.TrimSpace(raw)) == 0 {
		return false
	}
	_, err := validateEnvelope(raw)
	return err == nil
}

// CheckAndUnpackResponse validates the raw envelope, then returns only the
// useful payload: the decoded result when expectError is false, or an
// *RPCError when expectError is true. A mismatch between the expectation and
// the envelope is a hard failure, never silently tolerated.
//
// Results are decoded with json.Number so that hmyv2's large decimal values
// survive without losing precision.
func CheckAndUnpackResponse(raw []byte, expectError bool) (interface{}, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmptyResponse
	}
	env, err := validateEnvelope(raw)
	if err != nil {
		return nil, err
	}

	if expectError {
		rawErr, ok := env["error"]
		if !ok {
			return nil, &UnexpectedEnvelopeError{ExpectError: true, Raw: raw}
		}
		var rpcErr RPCError
		if err := json.Unmarshal(rawErr, &rpcErr); err != nil {
			return nil, &InvalidEnvelopeError{Reason: "undecodable error object", Raw: raw}
		}
		return &rpcErr, nil
	}

	rawResult, ok := env["result"]
	if !ok {
		return nil, &UnexpectedEnvelopeError{ExpectError: false, Raw: raw}
	}
	return decodeJSONValue(rawResult)
}

// UnpackResult asserts a success envelope and returns its decoded result.
func UnpackResult(raw []byte) (interface{}, error) {
	return CheckAndUnpackResponse(raw, false)
}

// UnpackError asserts an error envelope and returns its error object.
func UnpackError(raw []byte) (*RPCError, error) {
	v, err := CheckAndUnpackResponse(raw, true)
	if err != nil {
		return nil, err
	}
	return v.(*RPCError), nil
}

// validateEnvelope enforces the JSON-RPC 2.0 envelope contract: version tag
// "2.0", an id on success envelopes, and an error object with an integer
// code and string message on error envelopes. A "result" key (even null)
// marks a success envelope.
func validateEnvelope(raw []byte) (map[string]json.RawMessage, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &InvalidEnvelopeError{Reason: "not a JSON object", Raw: raw}
	}

	var version string
	if err := json.Unmarshal(env["jsonrpc"], &version); err != nil || version != "2.0" {
		return nil, &InvalidEnvelopeError{Reason: `missing "jsonrpc": "2.0"`, Raw: raw}
	}

	if _, ok := env["result"]; ok {
		if _, ok := env["id"]; !ok {
			return nil, &InvalidEnvelopeError{Reason: "success envelope without id", Raw: raw}
		}
		return env, nil
	}

	rawErr, ok := env["error"]
	if !ok {
		return nil, &InvalidEnvelopeError{Reason: "neither result nor error present", Raw: raw}
	}
	var errObj map[string]json.RawMessage
	if err := json.Unmarshal(rawErr, &errObj); err != nil {
		return nil, &InvalidEnvelopeError{Reason: "error is not an object", Raw: raw}
	}
	code, ok := errObj["code"]
	if !ok {
		return nil, &InvalidEnvelopeError{Reason: "error object without code", Raw: raw}
	}
	if _, err := strconv.ParseInt(string(bytes.TrimSpace(code)), 10, 64); err != nil {
		return nil, &InvalidEnvelopeError{Reason: "error code is not an integer", Raw: raw}
	}
	rawMsg, ok := errObj["message"]
	if !ok {
		return nil, &InvalidEnvelopeError{Reason: "error object without message", Raw: raw}
	}
	var msg string
	if err := json.Unmarshal(rawMsg, &msg); err != nil {
		return nil, &InvalidEnvelopeError{Reason: "error message is not a string", Raw: raw}
	}
	return env, nil
}

func decodeJSONValue(raw []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, errors.Wrap(err, "unable to decode result")
	}
	return v, nil
}
