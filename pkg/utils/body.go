package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// jsonPointerEscaper encodes a raw object key as an RFC 6901 reference token.
var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// JSONPatchOperation is a single RFC 6902 operation.
type JSONPatchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

func NewAdd(path string, value any) *JSONPatchOperation {
	return &JSONPatchOperation{
		Op:    "add",
		Path:  path,
		Value: value,
	}
}

// ModifyBodyAndParsed applies the patches to a JSON body and returns both
// the patched bytes and their parsed form.
func ModifyBodyAndParsed(body []byte, applyOpt *jsonpatch.ApplyOptions, patches ...*JSONPatchOperation) ([]byte, map[string]any, error) {
	encoded, err := json.Marshal(patches)
	if err != nil {
		return nil, nil, err
	}

	patch, err := jsonpatch.DecodePatch(encoded)
	if err != nil {
		return nil, nil, err
	}

	if applyOpt == nil {
		applyOpt = jsonpatch.NewApplyOptions()
	}

	patched, err := patch.ApplyWithOptions(body, applyOpt)
	if err != nil {
		return nil, nil, err
	}

	var newParsed map[string]any

	err = json.Unmarshal(patched, &newParsed)
	if err != nil {
		return nil, nil, err
	}

	return patched, newParsed, nil
}

// FillAbsentBodyParams adds each param to the JSON object body only when the
// body does not already carry the key. Existing keys win. Keys are escaped
// per RFC 6901, so "/" and "~" in a key stay part of the key.
func FillAbsentBodyParams(body []byte, params map[string]any) ([]byte, error) {
	if len(params) == 0 {
		return body, nil
	}

	var parsed map[string]any

	err := json.Unmarshal(body, &parsed)
	if err != nil {
		return nil, err
	}

	for k, v := range params {
		if _, exists := parsed[k]; exists {
			continue
		}

		body, parsed, err = ModifyBodyAndParsed(body, nil, NewAdd("/"+jsonPointerEscaper.Replace(k), v))
		if err != nil {
			return nil, fmt.Errorf("failed to add key %s: %w", k, err)
		}
	}

	return body, nil
}

// OverrideBodyParams sets each param on the JSON object body, replacing any
// value the body already carries for the key. Keys are escaped per RFC 6901.
func OverrideBodyParams(body []byte, params map[string]any) ([]byte, error) {
	if len(params) == 0 {
		return body, nil
	}

	applyOpt := jsonpatch.NewApplyOptions()
	applyOpt.EnsurePathExistsOnAdd = true

	var err error

	for k, v := range params {
		body, _, err = ModifyBodyAndParsed(body, applyOpt, NewAdd("/"+jsonPointerEscaper.Replace(k), v))
		if err != nil {
			return nil, fmt.Errorf("failed to set key %s: %w", k, err)
		}
	}

	return body, nil
}
