package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads the knowledge corpus from a JSON file. The top level may be a
// single record or an ordered array of heterogeneous records (plain strings,
// structured objects). Object keys are decoded through the token stream so
// field insertion order survives; a plain map would lose it.
func LoadFile(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return decodeRecords(data)
}

func decodeRecords(data []byte) ([]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("corpus file is empty")
	}

	if trimmed[0] != '[' {
		record, err := decodeRecord(trimmed)
		if err != nil {
			return nil, err
		}
		return []any{record}, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, fmt.Errorf("parse corpus array: %w", err)
	}

	records := make([]any, 0, len(raws))
	for i, raw := range raws {
		record, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func decodeRecord(raw []byte) (any, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty record")
	}

	if raw[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(raw))
		if _, err := dec.Token(); err != nil { // consume '{'
			return nil, err
		}
		return decodeFields(dec)
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// decodeFields reads an object body token by token, keeping key order
func decodeFields(dec *json.Decoder) (Fields, error) {
	var fields Fields
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return fields, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeFields(dec)
		case '[':
			var items []any
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return items, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	default:
		return tok, nil
	}
}
