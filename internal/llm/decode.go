package llm

import (
	"encoding/json"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// RawKey is the fallback key under which unparseable model output is kept.
const RawKey = "raw"

// ExtractJSONObject pulls a best-effort JSON object out of raw model output.
//
// Generative backends frequently prepend prose ("Here is the JSON:") or append
// trailing commentary around the object they were asked for. The substring
// between the first '{' and the last '}' recovers the common case without a
// full tokenizer; if that fails the whole string is tried. The terminal
// fallback is a one-key map {"raw": text} — this function never fails and is
// the last line of defense of the whole generative-scoring path.
func ExtractJSONObject(text string) map[string]any {
	cleaned := CleanJSONBlock(text)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end != -1 && end > start {
		var m map[string]any
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &m); err == nil {
			return m
		}
	}

	// A bare JSON "null" decodes into a nil map; treat it as unparseable.
	var m map[string]any
	if err := json.Unmarshal([]byte(cleaned), &m); err == nil && m != nil {
		return m
	}

	return map[string]any{RawKey: text}
}

// DecodeStrict decodes a raw mapping into target, failing on any field whose
// value cannot be represented by the target type. It round-trips through JSON
// so the target's json tags define the schema.
func DecodeStrict(raw map[string]any, target any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}

// DecodeLenient copies only the keys of raw that exist on target, leaving
// every other field at its default. Unknown keys are silently dropped and
// type mismatches on individual fields are tolerated where a weak conversion
// exists. target must already hold its default values.
//
// Together with DecodeStrict this forms the mandatory two-stage coercion for
// every structured-decoding call site: attempt the strict decode first, and
// on failure salvage whatever fields match.
func DecodeLenient(raw map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	// Field-level errors are acceptable; mapstructure fills what it can
	// before reporting them.
	_ = dec.Decode(raw)
	return nil
}

// DecodeResult decodes a raw mapping into target with the two-stage protocol.
// It reports whether the strict stage succeeded; the lenient stage never
// fails, so target is always populated as well as the input allows.
func DecodeResult(raw map[string]any, target any) bool {
	if err := DecodeStrict(raw, target); err == nil {
		return true
	}
	_ = DecodeLenient(raw, target)
	return false
}
