package ddl

import (
	"fmt"
	"strconv"
	"strings"
)

// TypeKind represents the kind of a column or parameter type.
type TypeKind string

const (
	KindBoolean   TypeKind = "boolean"
	KindInt8      TypeKind = "int8"
	KindInt16     TypeKind = "int16"
	KindInt32     TypeKind = "int32"
	KindInt64     TypeKind = "int64"
	KindFloat32   TypeKind = "float32"
	KindFloat64   TypeKind = "float64"
	KindDecimal   TypeKind = "decimal"
	KindString    TypeKind = "string"
	KindVarchar   TypeKind = "varchar"
	KindChar      TypeKind = "char"
	KindTimestamp TypeKind = "timestamp"
	KindDate      TypeKind = "date"
	KindArray     TypeKind = "array"
	KindMap       TypeKind = "map"
	KindStruct    TypeKind = "struct"
)

// DataType describes an abstract column or parameter type. It is a
// closed tagged variant: Kind selects the type, the remaining fields
// parameterize it (precision/scale for decimals, length for char
// types, component types for array/map/struct). Values are immutable
// once constructed.
type DataType struct {
	Kind      TypeKind
	Precision int
	Scale     int
	Length    int
	Elem      *DataType // array element, map value
	Key       *DataType // map key
	Fields    []Column  // struct fields, in declaration order
}

// Scalar type constructors.

func Boolean() DataType   { return DataType{Kind: KindBoolean} }
func Int8() DataType      { return DataType{Kind: KindInt8} }
func Int16() DataType     { return DataType{Kind: KindInt16} }
func Int32() DataType     { return DataType{Kind: KindInt32} }
func Int64() DataType     { return DataType{Kind: KindInt64} }
func Float32() DataType   { return DataType{Kind: KindFloat32} }
func Float64() DataType   { return DataType{Kind: KindFloat64} }
func String() DataType    { return DataType{Kind: KindString} }
func Timestamp() DataType { return DataType{Kind: KindTimestamp} }
func Date() DataType      { return DataType{Kind: KindDate} }

// Decimal returns a decimal type with the given precision and scale.
func Decimal(precision, scale int) DataType {
	return DataType{Kind: KindDecimal, Precision: precision, Scale: scale}
}

// Varchar returns a variable-length character type of at most n characters.
func Varchar(n int) DataType { return DataType{Kind: KindVarchar, Length: n} }

// Char returns a fixed-length character type of exactly n characters.
func Char(n int) DataType { return DataType{Kind: KindChar, Length: n} }

// Array returns an array type with the given element type.
func Array(elem DataType) DataType {
	return DataType{Kind: KindArray, Elem: &elem}
}

// MapOf returns a map type with the given key and value types.
func MapOf(key, value DataType) DataType {
	return DataType{Kind: KindMap, Key: &key, Elem: &value}
}

// StructOf returns a struct type with the given fields in order.
func StructOf(fields ...Column) DataType {
	return DataType{Kind: KindStruct, Fields: fields}
}

// IsString reports whether the type is the plain string type. Partition
// literals for string columns are double-quoted; every other type,
// including varchar and char, is emitted verbatim.
func (t DataType) IsString() bool { return t.Kind == KindString }

// SQL returns the Impala spelling of the type. Unsupported kinds are a
// hard error, never a silent stringification.
func (t DataType) SQL() (string, error) {
	switch t.Kind {
	case KindBoolean:
		return "boolean", nil
	case KindInt8:
		return "tinyint", nil
	case KindInt16:
		return "smallint", nil
	case KindInt32:
		return "int", nil
	case KindInt64:
		return "bigint", nil
	case KindFloat32:
		return "float", nil
	case KindFloat64:
		return "double", nil
	case KindString:
		return "string", nil
	case KindTimestamp:
		return "timestamp", nil
	case KindDate:
		return "date", nil
	case KindDecimal:
		return fmt.Sprintf("decimal(%d, %d)", t.Precision, t.Scale), nil
	case KindVarchar:
		return fmt.Sprintf("varchar(%d)", t.Length), nil
	case KindChar:
		return fmt.Sprintf("char(%d)", t.Length), nil
	case KindArray:
		if t.Elem == nil {
			return "", fmt.Errorf("array type has no element type")
		}
		elem, err := t.Elem.SQL()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("array<%s>", elem), nil
	case KindMap:
		if t.Key == nil || t.Elem == nil {
			return "", fmt.Errorf("map type has no key or value type")
		}
		key, err := t.Key.SQL()
		if err != nil {
			return "", err
		}
		value, err := t.Elem.SQL()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("map<%s, %s>", key, value), nil
	case KindStruct:
		if len(t.Fields) == 0 {
			return "", fmt.Errorf("struct type has no fields")
		}
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			fieldSQL, err := f.Type.SQL()
			if err != nil {
				return "", err
			}
			parts[i] = fmt.Sprintf("%s: %s", f.Name, fieldSQL)
		}
		return fmt.Sprintf("struct<%s>", strings.Join(parts, ", ")), nil
	}
	return "", fmt.Errorf("unsupported type kind: %q", t.Kind)
}

// ParseType parses a type spelling as produced by SQL back into a
// DataType. It accepts the common integer aliases (int, integer,
// tinyint, ...) and nested array/map/struct spellings. Parsing is used
// by the manifest layer; the core API takes DataType values directly.
func ParseType(s string) (DataType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DataType{}, fmt.Errorf("empty type")
	}

	name := s
	var args string
	if i := strings.IndexAny(s, "(<"); i >= 0 {
		name = strings.TrimSpace(s[:i])
		closer := byte(')')
		if s[i] == '<' {
			closer = '>'
		}
		if s[len(s)-1] != closer {
			return DataType{}, fmt.Errorf("malformed type: %q", s)
		}
		args = s[i+1 : len(s)-1]
	}

	switch strings.ToLower(name) {
	case "boolean", "bool":
		return Boolean(), nil
	case "tinyint", "int8":
		return Int8(), nil
	case "smallint", "int16":
		return Int16(), nil
	case "int", "integer", "int32":
		return Int32(), nil
	case "bigint", "int64":
		return Int64(), nil
	case "float", "float32":
		return Float32(), nil
	case "double", "float64":
		return Float64(), nil
	case "string":
		return String(), nil
	case "timestamp":
		return Timestamp(), nil
	case "date":
		return Date(), nil
	case "decimal":
		precision, scale, err := parseTypeInts(s, args, 2)
		if err != nil {
			return DataType{}, err
		}
		return Decimal(precision, scale), nil
	case "varchar":
		n, _, err := parseTypeInts(s, args, 1)
		if err != nil {
			return DataType{}, err
		}
		return Varchar(n), nil
	case "char":
		n, _, err := parseTypeInts(s, args, 1)
		if err != nil {
			return DataType{}, err
		}
		return Char(n), nil
	case "array":
		elem, err := ParseType(args)
		if err != nil {
			return DataType{}, err
		}
		return Array(elem), nil
	case "map":
		parts := splitTopLevel(args)
		if len(parts) != 2 {
			return DataType{}, fmt.Errorf("malformed map type: %q", s)
		}
		key, err := ParseType(parts[0])
		if err != nil {
			return DataType{}, err
		}
		value, err := ParseType(parts[1])
		if err != nil {
			return DataType{}, err
		}
		return MapOf(key, value), nil
	case "struct":
		parts := splitTopLevel(args)
		if len(parts) == 0 {
			return DataType{}, fmt.Errorf("malformed struct type: %q", s)
		}
		fields := make([]Column, len(parts))
		for i, part := range parts {
			fieldName, fieldType, ok := strings.Cut(part, ":")
			if !ok {
				return DataType{}, fmt.Errorf("malformed struct field: %q", part)
			}
			ft, err := ParseType(fieldType)
			if err != nil {
				return DataType{}, err
			}
			fields[i] = Column{Name: strings.TrimSpace(fieldName), Type: ft}
		}
		return StructOf(fields...), nil
	}
	return DataType{}, fmt.Errorf("unsupported type: %q", s)
}

// parseTypeInts parses the parenthesized integer arguments of a
// parameterized type such as decimal(9, 2) or varchar(120).
func parseTypeInts(typ, args string, want int) (int, int, error) {
	parts := splitTopLevel(args)
	if len(parts) != want {
		return 0, 0, fmt.Errorf("malformed type: %q", typ)
	}
	values := make([]int, 2)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, 0, fmt.Errorf("malformed type: %q", typ)
		}
		values[i] = n
	}
	return values[0], values[1], nil
}

// splitTopLevel splits a comma-separated list, ignoring commas nested
// inside <...> and (...) groups.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if rest := strings.TrimSpace(s[start:]); rest != "" {
		parts = append(parts, rest)
	}
	return parts
}
