package model

import "encoding/json"

// EncodeTags serializes a tag list to its storage form. Insertion order is
// preserved; a nil slice encodes as an empty list.
func EncodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeTags parses the stored tag list. Invalid or empty input yields an
// empty slice, never nil, so JSON responses always contain an array.
func DecodeTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}
