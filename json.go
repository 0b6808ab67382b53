package collection

import "github.com/tidwall/gjson"

// ParseJSONArray returns a collection of the elements of the array found at path in json.
// The path uses gjson syntax, an empty path selects the document itself.
//
// A path that does not exist, or selects null, yields an empty collection. A path that selects
// a single non-array value yields a collection of that value. If json is not valid JSON,
// it returns ErrInvalidJSON.
func ParseJSONArray(json string, path string) (*Plain[gjson.Result], error) {
	if !gjson.Valid(json) {
		return nil, ErrInvalidJSON
	}

	res := gjson.Parse(json)
	if path != "" {
		res = res.Get(path)
	}

	return NewPlain[gjson.Result](wrap(res.Array())), nil
}
