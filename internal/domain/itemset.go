package domain

import (
	"encoding/json"
	"errors"
	"strconv"
)

// DefaultMapCode is the map identifier for Summoner's Rift 5v5, the only map
// the embedded table targets.
const DefaultMapCode = "SR"

// DecodeItemSet decodes the raw bytes of an item set file. The root of a Riot
// item set is always a JSON object; anything else is reported as malformed.
func DecodeItemSet(path string, raw []byte) (map[string]any, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &MalformedJSONError{Path: path, Err: err}
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &MalformedJSONError{Path: path, Err: errors.New("root is not an object")}
	}
	return obj, nil
}

// Eligible reports whether the decoded item set targets the given map code.
// The comparison is a case-sensitive exact match on the top-level "map" field.
func Eligible(doc map[string]any, mapCode string) bool {
	v, ok := doc["map"].(string)
	return ok && v == mapCode
}

// ReplaceIDs rewrites every item identifier in doc that the table maps,
// modifying doc in place. Identifiers live at blocks[].items[].id in Riot's
// schema; a root-level items collection is accepted too. IDs may be JSON
// numbers or numeric strings; the replacement keeps the original JSON type.
// Returns the applied mappings, one per occurrence, in document order.
func ReplaceIDs(doc map[string]any, table Table) []ItemMapping {
	var replaced []ItemMapping

	if items, ok := doc["items"].([]any); ok {
		replaced = append(replaced, replaceInItems(items, table)...)
	}

	if blocks, ok := doc["blocks"].([]any); ok {
		for _, b := range blocks {
			block, ok := b.(map[string]any)
			if !ok {
				continue
			}
			items, ok := block["items"].([]any)
			if !ok {
				continue
			}
			replaced = append(replaced, replaceInItems(items, table)...)
		}
	}

	return replaced
}

func replaceInItems(items []any, table Table) []ItemMapping {
	var replaced []ItemMapping
	for _, it := range items {
		item, ok := it.(map[string]any)
		if !ok {
			continue
		}
		oldID, ok := itemID(item["id"])
		if !ok {
			continue
		}
		mapping, ok := table.Lookup(oldID)
		if !ok || mapping.NewID == oldID {
			continue
		}
		switch item["id"].(type) {
		case string:
			item["id"] = strconv.Itoa(mapping.NewID)
		default:
			item["id"] = float64(mapping.NewID)
		}
		replaced = append(replaced, mapping)
	}
	return replaced
}

// itemID normalizes a raw "id" value to an integer identifier.
func itemID(v any) (int, bool) {
	switch id := v.(type) {
	case string:
		n, err := strconv.Atoi(id)
		if err != nil {
			return 0, false
		}
		return n, true
	case float64:
		n := int(id)
		if float64(n) != id {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
