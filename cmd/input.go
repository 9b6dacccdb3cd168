package main

import (
	"encoding/json"
	"errors"
)

var (
	errDecodeJSON = errors.New(`Decoding JSON array failed. JSON array must be bounded by brackets and include double quoted elements (e.g. - ["10H", "JH", "QH", "KH", "AH"]).`)
	errNotArray   = errors.New(`Valid JSON, but not an array. JSON array must be bounded by brackets and include double quoted elements (e.g. - ["10H", "JH", "QH", "KH", "AH"]).`)
)

// loadJSONArray decodes user input that must hold a JSON array. The elements
// are left for the hand to validate.
func loadJSONArray(input string) ([]any, error) {
	var value any
	if err := json.Unmarshal([]byte(input), &value); err != nil {
		return nil, errDecodeJSON
	}
	array, ok := value.([]any)
	if !ok {
		return nil, errNotArray
	}
	return array, nil
}
