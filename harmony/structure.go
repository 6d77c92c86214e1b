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
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// jsonKind is the tagged-variant view of a decoded JSON value. References
// may be authored with native Go literals, candidates come from
// encoding/json with UseNumber; both collapse onto the same kinds.
type jsonKind int

const (
	kindInvalid jsonKind = iota
	kindNull
	kindObject
	kindArray
	kindString
	kindNumber
	kindBool
)

func (k jsonKind) String() string {
	switch k {
	case kindNull:
		return "null"
	case kindObject:
		return "object"
	case kindArray:
		return "array"
	case kindString:
		return "string"
	case kindNumber:
		return "number"
	case kindBool:
		return "bool"
	default:
		return "invalid"
	}
}

func kindOf(v interface{}) jsonKind {
	switch v.(type) {
	case nil:
		return kindNull
	case map[string]interface{}:
		return kindObject
	case []interface{}:
		return kindArray
	case string:
		return kindString
	case json.Number, float64, int, int64, uint64:
		return kindNumber
	case bool:
		return kindBool
	default:
		return kindInvalid
	}
}

// ValidateJSONStructure verifies that candidate conforms to the shape
// implied by reference, without requiring exact equality:
//
//   - a null reference or candidate passes trivially (null is a wildcard)
//   - kinds must match otherwise
//   - every reference object key must exist in the candidate; extra
//     candidate keys are permitted and ignored
//   - lists are compared only over their overlapping prefix; an empty list
//     on either side skips the check (no samples to validate against)
//   - a reference string starting with "0x" requires a "0x" candidate, and a
//     reference string that is a valid ONE address requires the candidate to
//     be one too (type-tag checks, not value checks)
func ValidateJSONStructure(reference, candidate interface{}) error {
	if reference == nil || candidate == nil {
		return nil
	}
	refKind, candKind := kindOf(reference), kindOf(candidate)
	if refKind != candKind {
		return errors.Errorf("expected type %s not %s in %s", refKind, candKind, dumpJSON(candidate))
	}

	switch refKind {
	case kindArray:
		ref, cand := toArray(reference), toArray(candidate)
		if len(ref) == 0 || len(cand) == 0 {
			return nil
		}
		n := len(ref)
		if len(cand) < n {
			n = len(cand)
		}
		for i := 0; i < n; i++ {
			if err := ValidateJSONStructure(ref[i], cand[i]); err != nil {
				return err
			}
		}
	case kindObject:
		ref, cand := toObject(reference), toObject(candidate)
		for key, refVal := range ref {
			candVal, ok := cand[key]
			if !ok {
				return errors.Errorf("expected key %q in %s", key, dumpJSON(candidate))
			}
			if err := ValidateJSONStructure(refVal, candVal); err != nil {
				return err
			}
		}
	case kindString:
		ref, cand := reference.(string), candidate.(string)
		if strings.HasPrefix(ref, "0x") && !strings.HasPrefix(cand, "0x") {
			return errors.Errorf("expected a hex string, reference: %s, got %s", ref, cand)
		}
		if strings.HasPrefix(ref, AddressHRP+"1") && IsValidAddress(ref) && !IsValidAddress(cand) {
			return errors.Errorf("expected a valid ONE address, reference: %s, got %s", ref, cand)
		}
	}
	return nil
}

// ValidateDictStructure is the strict sibling of ValidateJSONStructure, used
// for metadata-shaped responses: both values must be objects, every
// reference key must exist in the candidate with the exact same kind, and
// nested objects are checked recursively. Extra candidate keys remain
// permitted.
func ValidateDictStructure(reference, candidate interface{}) error {
	ref := toObject(reference)
	if ref == nil {
		return errors.Errorf("reference must be an object, not %s", kindOf(reference))
	}
	cand := toObject(candidate)
	if cand == nil {
		return errors.Errorf("candidate must be an object, not %s", kindOf(candidate))
	}

	for key, refVal := range ref {
		candVal, ok := cand[key]
		if !ok {
			return errors.Errorf("expected key %q in %s", key, dumpJSON(candidate))
		}
		refKind, candKind := kindOf(refVal), kindOf(candVal)
		if refKind != candKind {
			return errors.Errorf(
				"expected type %s for key %q in %s, not %s",
				refKind, key, dumpJSON(candidate), candKind,
			)
		}
		if refKind == kindObject {
			if err := ValidateDictStructure(refVal, candVal); err != nil {
				return err
			}
		}
	}
	return nil
}

func toObject(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func toArray(v interface{}) []interface{} {
	a, _ := v.([]interface{})
	return a
}

func dumpJSON(v interface{}) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "<unencodable value>"
	}
	return string(out)
}
