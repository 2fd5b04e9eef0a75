package bytes

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"
)

// BytesFromStruct serializes the fields of a struct to an array of bytes in the
// order in which the fields are declared and returns total number of bytes converted.
// Every field is written little endian with no padding between fields.
func BytesFromStruct(data interface{}) ([]byte, int, error) {
	val := reflect.ValueOf(data)
	valKind := val.Kind()

	if valKind == reflect.Ptr {
		val = val.Elem()
		valKind = val.Kind()
	}

	if valKind != reflect.Struct {
		return nil, 0, fmt.Errorf("BytesFromStruct(): data must be of type struct "+
			"or ptr to struct, got: %s", valKind)
	}

	convertedBytes := new(bytes.Buffer)
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)

		var err error
		switch kind := field.Kind(); kind {
		case reflect.Struct, reflect.Ptr:
			var b []byte
			if b, _, err = BytesFromStruct(field.Interface()); err == nil {
				_, err = convertedBytes.Write(b)
			}
		default:
			err = binary.Write(convertedBytes, binary.LittleEndian, field.Interface())
		}
		if err != nil {
			return nil, 0, fmt.Errorf("writing field %s: %w", val.Type().Field(i).Name, err)
		}
	}
	return convertedBytes.Bytes(), convertedBytes.Len(), nil
}

// StructFromBytes populates the struct pointed to by targetStruct by reading in a
// stream of bytes and filling the values in sequential order. The returned error
// wraps the underlying reader error (io.ErrUnexpectedEOF when data runs out in
// the middle of a field), along with the offset at which the field started.
func StructFromBytes(data []byte, targetStruct interface{}) error {
	targetVal := reflect.ValueOf(targetStruct)

	if targetVal.Kind() != reflect.Ptr || targetVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("StructFromBytes(): targetStruct must be a "+
			"ptr to struct, got: %T", targetStruct)
	}

	reader := bytes.NewReader(data)
	val := targetVal.Elem()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		offset := len(data) - reader.Len()

		if err := binary.Read(reader, binary.LittleEndian, field.Addr().Interface()); err != nil {
			return &FieldError{
				Field:  val.Type().Field(i).Name,
				Offset: offset,
				Err:    err,
			}
		}
	}
	return nil
}

// FieldError is returned by StructFromBytes when a field could not be read.
type FieldError struct {
	Field  string
	Offset int
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("reading field %s at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// SizeOf returns the number of bytes BytesFromStruct produces for v, or -1 if
// v contains a field without a fixed size.
func SizeOf(v interface{}) int {
	return binary.Size(v)
}
