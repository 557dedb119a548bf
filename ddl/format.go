package ddl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hamba/avro/v2"
)

// TableFormat describes how a table's data is laid out on disk. Each
// variant owns the DDL clause sequence needed to express it; the caller
// joins the clauses with newlines.
type TableFormat interface {
	Clauses() ([]string, error)
}

// DelimitedFormat is a delimited text layout. Optional fields are
// omitted from the DDL when unset.
type DelimitedFormat struct {
	Path           string
	Delimiter      string
	EscapeChar     string
	LineTerminator string
	NullFormat     string // rendered as the serialization.null.format table property
}

// Clauses emits ROW FORMAT DELIMITED followed by the configured
// terminator clauses, the location, and, when a null representation is
// set, a trailing TBLPROPERTIES block.
func (f DelimitedFormat) Clauses() ([]string, error) {
	clauses := []string{"ROW FORMAT DELIMITED"}

	if f.Delimiter != "" {
		clauses = append(clauses, fmt.Sprintf("FIELDS TERMINATED BY '%s'", f.Delimiter))
	}
	if f.EscapeChar != "" {
		clauses = append(clauses, fmt.Sprintf("ESCAPED BY '%s'", f.EscapeChar))
	}
	if f.LineTerminator != "" {
		clauses = append(clauses, fmt.Sprintf("LINES TERMINATED BY '%s'", f.LineTerminator))
	}

	clauses = append(clauses, fmt.Sprintf("LOCATION '%s'", f.Path))

	if f.NullFormat != "" {
		props := map[string]string{"serialization.null.format": f.NullFormat}
		clauses = append(clauses, formatTblProperties(props))
	}
	return clauses, nil
}

// AvroFormat is an Avro layout. Schema holds the Avro schema as a
// JSON-marshalable value (map, struct, or raw JSON via string, []byte
// or json.RawMessage). The schema is embedded into the DDL as the
// avro.schema.literal table property.
type AvroFormat struct {
	Path   string
	Schema any
}

// Clauses emits STORED AS AVRO, the location, and the schema literal.
// The schema is validated as a real Avro schema before being embedded;
// an invalid schema is a configuration error, caught here rather than
// at the engine.
func (f AvroFormat) Clauses() ([]string, error) {
	literal, err := avroSchemaLiteral(f.Schema)
	if err != nil {
		return nil, err
	}
	props := map[string]string{"avro.schema.literal": literal}
	return []string{
		"STORED AS AVRO",
		fmt.Sprintf("LOCATION '%s'", f.Path),
		formatTblProperties(props),
	}, nil
}

// ParquetFormat is a columnar Parquet layout. It carries no properties.
type ParquetFormat struct {
	Path string
}

func (f ParquetFormat) Clauses() ([]string, error) {
	return []string{
		"STORED AS PARQUET",
		fmt.Sprintf("LOCATION '%s'", f.Path),
	}, nil
}

// avroSchemaLiteral renders an Avro schema as indented JSON with
// trailing whitespace stripped per line. Engines are sensitive to
// trailing whitespace inside embedded literal blocks.
func avroSchemaLiteral(schema any) (string, error) {
	if schema == nil {
		return "", fmt.Errorf("avro format requires a schema")
	}

	// Re-decode raw JSON inputs so the output is canonically indented
	// with sorted keys regardless of how the caller formatted it.
	switch raw := schema.(type) {
	case string:
		schema = json.RawMessage(raw)
	case []byte:
		schema = json.RawMessage(raw)
	}
	if raw, ok := schema.(json.RawMessage); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return "", fmt.Errorf("invalid avro schema JSON: %w", err)
		}
		schema = decoded
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal avro schema: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	literal := strings.Join(lines, "\n")

	if _, err := avro.Parse(literal); err != nil {
		return "", fmt.Errorf("invalid avro schema: %w", err)
	}
	return literal, nil
}
