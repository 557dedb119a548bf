package ddl

import (
	"fmt"
	"strings"
)

// PartitionSpec selects the partition a statement applies to. A named
// spec maps partition-column names to literal values and may cover only
// a subset of the partition schema; uncovered columns are emitted as
// bare names (dynamic partitioning). A positional spec lists one value
// per partition column in schema order.
//
// A spec is always interpreted against the partition schema supplied to
// the statement; output order is schema declaration order regardless of
// how the spec was built.
type PartitionSpec struct {
	byName       map[string]any
	positional   []any
	isPositional bool
}

// PartitionByName builds a partition spec from column name to value.
// Columns of the partition schema missing from values become dynamic
// partition columns.
func PartitionByName(values map[string]any) *PartitionSpec {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &PartitionSpec{byName: copied}
}

// PartitionByPosition builds a partition spec whose values align 1:1
// with the partition schema's declared column order.
func PartitionByPosition(values ...any) *PartitionSpec {
	return &PartitionSpec{positional: append([]any(nil), values...), isPositional: true}
}

// formatPartition renders PARTITION (col1=val1, col2, col3=val3).
// Literals for string-typed columns are double-quoted; all other types
// are stringified verbatim — this is what keeps a numeric partition
// predicate numeric on the engine side.
func formatPartition(spec *PartitionSpec, schema *Schema) (string, error) {
	if spec == nil {
		return "", fmt.Errorf("no partition spec given")
	}
	if schema == nil {
		return "", fmt.Errorf("partition spec requires a partition schema")
	}

	var tokens []string
	if spec.isPositional {
		if len(spec.positional) != schema.Len() {
			return "", fmt.Errorf(
				"positional partition spec has %d values for %d partition columns",
				len(spec.positional), schema.Len(),
			)
		}
		for i, col := range schema.Columns() {
			tokens = append(tokens, formatPartitionKV(col.Name, spec.positional[i], col.Type))
		}
	} else {
		for _, col := range schema.Columns() {
			if value, ok := spec.byName[col.Name]; ok {
				tokens = append(tokens, formatPartitionKV(col.Name, value, col.Type))
			} else {
				// dynamic partitioning
				tokens = append(tokens, col.Name)
			}
		}
	}

	return "PARTITION (" + strings.Join(tokens, ", ") + ")", nil
}

// formatPartitionKV renders a single col=literal token with type-aware
// quoting. Double quotes are added without escaping the value.
func formatPartitionKV(name string, value any, typ DataType) string {
	if typ.IsString() {
		return fmt.Sprintf(`%s="%v"`, name, value)
	}
	return fmt.Sprintf("%s=%v", name, value)
}
