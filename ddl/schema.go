package ddl

import (
	"fmt"
	"strings"
)

// Column is a named, typed schema entry.
type Column struct {
	Name string
	Type DataType
}

// Schema is an ordered mapping from column name to type. Order is
// significant: it determines column declaration order in CREATE
// statements and the emission order of partition columns.
type Schema struct {
	columns []Column
	index   map[string]int
}

// NewSchema builds a schema from columns in declaration order. Column
// names must be unique and non-empty.
func NewSchema(columns ...Column) (*Schema, error) {
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if col.Name == "" {
			return nil, fmt.Errorf("schema column %d has no name", i)
		}
		if _, ok := index[col.Name]; ok {
			return nil, fmt.Errorf("duplicate schema column: %q", col.Name)
		}
		index[col.Name] = i
	}
	return &Schema{columns: append([]Column(nil), columns...), index: index}, nil
}

// Len returns the number of columns.
func (s *Schema) Len() int { return len(s.columns) }

// Columns returns the columns in declaration order. The returned slice
// is a copy.
func (s *Schema) Columns() []Column {
	return append([]Column(nil), s.columns...)
}

// Names returns the column names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.columns))
	for i, col := range s.columns {
		names[i] = col.Name
	}
	return names
}

// Type looks up a column's type by name.
func (s *Schema) Type(name string) (DataType, bool) {
	i, ok := s.index[name]
	if !ok {
		return DataType{}, false
	}
	return s.columns[i].Type, true
}

// Has reports whether the schema declares the named column.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Select returns a new schema holding only the named columns, in the
// order given. Every name must exist in the receiver.
func (s *Schema) Select(names ...string) (*Schema, error) {
	columns := make([]Column, 0, len(names))
	for _, name := range names {
		i, ok := s.index[name]
		if !ok {
			return nil, fmt.Errorf("no such schema column: %q", name)
		}
		columns = append(columns, s.columns[i])
	}
	return NewSchema(columns...)
}

// Without returns a new schema with the named columns removed. Unknown
// names are ignored.
func (s *Schema) Without(names ...string) *Schema {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}
	columns := make([]Column, 0, len(s.columns))
	for _, col := range s.columns {
		if !drop[col.Name] {
			columns = append(columns, col)
		}
	}
	out, _ := NewSchema(columns...)
	return out
}

// formatSchema renders a column declaration list:
//
//	(`a` int,
//	 `b` string)
//
// Column names are always backtick-quoted.
func formatSchema(s *Schema) (string, error) {
	elements := make([]string, len(s.columns))
	for i, col := range s.columns {
		typeSQL, err := col.Type.SQL()
		if err != nil {
			return "", fmt.Errorf("column %q: %w", col.Name, err)
		}
		elements[i] = fmt.Sprintf("%s %s", quoteAlways(col.Name), typeSQL)
	}
	return "(" + strings.Join(elements, ",\n ") + ")", nil
}
