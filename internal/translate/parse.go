package translate

import (
	"encoding/json"
	"regexp"
	"strings"
)

var quotedRe = regexp.MustCompile(`"([^"]+?)"`)

// parsePayload extracts the translated text from the endpoint's
// response. The response format is not a documented contract and varies
// by input, so this walks a fixed chain of known shapes and degrades to
// heuristics rather than failing:
//
//  1. ["translation", ...]                       flat array
//  2. [["translation","lang"]]                   nested pair
//  3. [[["seg1","src1"],["seg2","src2"], ...]]   segments, joined by " "
//  4. first quoted string anywhere in the payload
//  5. the raw trimmed payload
//
// The bool result reports whether a heuristic fallback (4 or 5) was
// used. Do not tighten this chain: stricter parsing breaks on shapes
// the endpoint produces for some inputs.
func parsePayload(payload string) (string, bool) {
	trimmed := strings.TrimSpace(payload)

	var root any
	if err := json.Unmarshal([]byte(trimmed), &root); err == nil {
		if text, ok := parseKnownShapes(root); ok {
			return text, false
		}
	} else if !strings.Contains(trimmed, "[") && !strings.Contains(trimmed, "{") {
		// Plain text response.
		return trimmed, false
	}

	if m := quotedRe.FindStringSubmatch(trimmed); m != nil {
		return m[1], true
	}
	return trimmed, true
}

func parseKnownShapes(root any) (string, bool) {
	arr, ok := root.([]any)
	if !ok || len(arr) == 0 {
		return "", false
	}

	switch first := arr[0].(type) {
	case string:
		// ["translation", "source", null, null]
		return first, true
	case []any:
		if len(first) == 0 {
			return "", false
		}
		switch inner := first[0].(type) {
		case string:
			// [["translation","lang"]]
			return inner, true
		case []any:
			// [[["seg","src"], ...]]: concatenate segment translations.
			var parts []string
			for _, seg := range first {
				pair, ok := seg.([]any)
				if !ok || len(pair) == 0 {
					continue
				}
				if text, ok := pair[0].(string); ok {
					parts = append(parts, text)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, " "), true
			}
		}
	}
	return "", false
}
