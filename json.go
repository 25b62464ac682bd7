package twodict

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/buger/jsonparser"
	"github.com/mailru/easyjson/jwriter"
)

var (
	_ json.Marshaler   = &TwoDict[string]{}
	_ json.Unmarshaler = &TwoDict[string]{}
)

// MarshalJSON renders the dict as a JSON object holding the logical
// entries in insertion order, key side as the member name. JSON member
// names are strings, so entry keys must be of a string or integer kind,
// or implement encoding.TextMarshaler; anything else fails. The reverse
// direction is not serialized, it is rebuilt on load.
func (d *TwoDict[T]) MarshalJSON() ([]byte, error) {
	writer := jwriter.Writer{}
	writer.RawByte('{')

	first := true
	for key, value := range d.FromOldest() {
		if !first {
			writer.RawByte(',')
		}
		first = false

		if err := writeJSONKey(&writer, key); err != nil {
			return nil, err
		}
		writer.RawByte(':')
		writer.Raw(json.Marshal(value))
	}

	writer.RawByte('}')
	return dumpWriter(&writer)
}

// UnmarshalJSON loads a JSON object, assigning each member through Set in
// document order. Duplicate member names, or members whose values
// collide in the shared namespace, resolve by the usual Set rules. A
// zero-value dict is initialized on the way in.
func (d *TwoDict[T]) UnmarshalJSON(data []byte) error {
	d.ensureInit(0)

	return jsonparser.ObjectEach(
		data,
		func(keyData []byte, valueData []byte, dataType jsonparser.ValueType, offset int) error {
			if dataType == jsonparser.String {
				// jsonparser removes the enclosing quotes; restore them to
				// hand json.Unmarshal a valid JSON string again.
				valueData = data[offset-len(valueData)-2 : offset]
			}

			key, err := parseJSONKey[T](keyData)
			if err != nil {
				return err
			}

			var value T
			if err := json.Unmarshal(valueData, &value); err != nil {
				return err
			}

			d.Set(key, value)
			return nil
		})
}

func writeJSONKey[T comparable](writer *jwriter.Writer, key T) error {
	switch typedKey := any(key).(type) {
	case string:
		writer.String(typedKey)
	case encoding.TextMarshaler:
		text, err := typedKey.MarshalText()
		if err != nil {
			return err
		}
		writer.String(string(text))
	case int:
		writer.String(strconv.Itoa(typedKey))
	case int8:
		writer.String(strconv.FormatInt(int64(typedKey), 10))
	case int16:
		writer.String(strconv.FormatInt(int64(typedKey), 10))
	case int32:
		writer.String(strconv.FormatInt(int64(typedKey), 10))
	case int64:
		writer.String(strconv.FormatInt(typedKey, 10))
	case uint:
		writer.String(strconv.FormatUint(uint64(typedKey), 10))
	case uint8:
		writer.String(strconv.FormatUint(uint64(typedKey), 10))
	case uint16:
		writer.String(strconv.FormatUint(uint64(typedKey), 10))
	case uint32:
		writer.String(strconv.FormatUint(uint64(typedKey), 10))
	case uint64:
		writer.String(strconv.FormatUint(typedKey, 10))
	default:
		// Wrapper types around string or integer kinds still make
		// valid member names.
		switch keyValue := reflect.ValueOf(key); keyValue.Kind() {
		case reflect.String:
			writer.String(keyValue.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			writer.String(strconv.FormatInt(keyValue.Int(), 10))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			writer.String(strconv.FormatUint(keyValue.Uint(), 10))
		default:
			return fmt.Errorf("twodict: unsupported JSON key type: %T", key)
		}
	}
	return nil
}

func parseJSONKey[T comparable](keyData []byte) (T, error) {
	var key T

	switch typedKey := any(&key).(type) {
	case *string:
		s, err := decodeUTF8(keyData)
		if err != nil {
			return key, err
		}
		*typedKey = s
	case *any:
		// Mixed-type dicts get their member names back as plain
		// strings, the way encoding/json fills a map[string]any.
		s, err := decodeUTF8(keyData)
		if err != nil {
			return key, err
		}
		*typedKey = s
	case encoding.TextUnmarshaler:
		if err := typedKey.UnmarshalText(keyData); err != nil {
			return key, err
		}
	case *int, *int8, *int16, *int32, *int64, *uint, *uint8, *uint16, *uint32, *uint64:
		if err := json.Unmarshal(keyData, typedKey); err != nil {
			return key, err
		}
	default:
		// Wrapper types around string or integer kinds.
		keyValue := reflect.ValueOf(&key).Elem()
		switch keyValue.Kind() {
		case reflect.String:
			s, err := decodeUTF8(keyData)
			if err != nil {
				return key, err
			}
			keyValue.SetString(s)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(string(keyData), 10, 64)
			if err != nil {
				return key, err
			}
			keyValue.SetInt(n)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n, err := strconv.ParseUint(string(keyData), 10, 64)
			if err != nil {
				return key, err
			}
			keyValue.SetUint(n)
		default:
			return key, fmt.Errorf("twodict: unsupported JSON key type: %T", key)
		}
	}

	return key, nil
}

func dumpWriter(writer *jwriter.Writer) ([]byte, error) {
	if writer.Error != nil {
		return nil, writer.Error
	}

	var buf bytes.Buffer
	buf.Grow(writer.Size())
	if _, err := writer.DumpTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decodeUTF8(input []byte) (string, error) {
	remaining, offset := input, 0
	runes := make([]rune, 0, len(remaining))

	for len(remaining) > 0 {
		decoded, size := utf8.DecodeRune(remaining)
		if decoded == utf8.RuneError && size <= 1 {
			return "", fmt.Errorf("twodict: not a valid UTF-8 string (at position %d): %s", offset, string(input))
		}

		runes = append(runes, decoded)
		remaining = remaining[size:]
		offset += size
	}

	return string(runes), nil
}
