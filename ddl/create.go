package ddl

import (
	"fmt"
	"strings"
)

// createTableLine renders the CREATE [EXTERNAL ]TABLE [IF NOT EXISTS ]name
// opening line shared by every create-table variant.
func createTableLine(name, database string, external, canExist bool) string {
	var b strings.Builder
	b.WriteString("CREATE ")
	if external {
		b.WriteString("EXTERNAL ")
	}
	b.WriteString("TABLE ")
	if canExist {
		b.WriteString("IF NOT EXISTS ")
	}
	b.WriteString(scopedName(name, database))
	return b.String()
}

// joinPieces assembles a statement from its opening line and clause
// pieces, one per line, skipping empties.
func joinPieces(pieces []string) string {
	kept := pieces[:0]
	for _, p := range pieces {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// CreateTableWithSchema creates a table from an explicit column schema
// plus a storage format. When PartitionedBy names columns of the schema,
// those columns are lifted out of the main column list into a
// PARTITIONED BY block.
type CreateTableWithSchema struct {
	Name          string
	Database      string
	Schema        *Schema
	Format        TableFormat // optional; FileFormat/Path used when nil
	PartitionedBy []string
	FileFormat    string // STORED AS format when Format is nil; defaults to PARQUET
	Path          string // LOCATION when Format is nil; omitted when empty
	External      bool
	CanExist      bool
}

func (c *CreateTableWithSchema) Compile() (string, error) {
	if c.Schema == nil || c.Schema.Len() == 0 {
		return "", fmt.Errorf("create table %s: schema required", c.Name)
	}

	pieces := []string{createTableLine(c.Name, c.Database, c.External, c.CanExist)}

	if len(c.PartitionedBy) > 0 {
		partSchema, err := c.Schema.Select(c.PartitionedBy...)
		if err != nil {
			return "", fmt.Errorf("create table %s: %w", c.Name, err)
		}
		mainSchema := c.Schema.Without(c.PartitionedBy...)
		if mainSchema.Len() == 0 {
			return "", fmt.Errorf("create table %s: every column is a partition column", c.Name)
		}
		mainDecl, err := formatSchema(mainSchema)
		if err != nil {
			return "", err
		}
		partDecl, err := formatSchema(partSchema)
		if err != nil {
			return "", err
		}
		pieces = append(pieces, mainDecl, "PARTITIONED BY "+partDecl)
	} else {
		decl, err := formatSchema(c.Schema)
		if err != nil {
			return "", err
		}
		pieces = append(pieces, decl)
	}

	if c.Format != nil {
		clauses, err := c.Format.Clauses()
		if err != nil {
			return "", err
		}
		pieces = append(pieces, strings.Join(clauses, "\n"))
	} else {
		storage, location, err := storedAs(c.FileFormat, c.Path)
		if err != nil {
			return "", err
		}
		pieces = append(pieces, storage, location)
	}

	return joinPieces(pieces), nil
}

// storedAs renders the STORED AS and optional LOCATION clauses for
// create variants that carry a bare format name instead of a
// TableFormat descriptor.
func storedAs(format, path string) (storage, location string, err error) {
	sanitized, err := sanitizeFileFormat(format)
	if err != nil {
		return "", "", err
	}
	if sanitized == "" {
		sanitized = "PARQUET"
	}
	storage = "STORED AS " + sanitized
	if path != "" {
		location = fmt.Sprintf("LOCATION '%s'", path)
	}
	return storage, location, nil
}

// CreateTableParquet creates a Parquet-backed table whose columns come
// from exactly one of: a Parquet example file, an example table, or an
// explicit schema.
type CreateTableParquet struct {
	Name         string
	Database     string
	Path         string
	ExampleFile  string
	ExampleTable string
	Schema       *Schema
	External     bool
	CanExist     bool
}

// NewCreateTableParquet returns a CreateTableParquet with the usual
// defaults for file-backed tables (external).
func NewCreateTableParquet(name, database, path string) *CreateTableParquet {
	return &CreateTableParquet{Name: name, Database: database, Path: path, External: true}
}

func (c *CreateTableParquet) Compile() (string, error) {
	sources := 0
	if c.ExampleFile != "" {
		sources++
	}
	if c.ExampleTable != "" {
		sources++
	}
	if c.Schema != nil {
		sources++
	}
	if sources != 1 {
		return "", fmt.Errorf(
			"create table %s: exactly one of example file, example table or schema required",
			c.Name,
		)
	}

	pieces := []string{createTableLine(c.Name, c.Database, c.External, c.CanExist)}

	switch {
	case c.ExampleFile != "":
		pieces = append(pieces, fmt.Sprintf("LIKE PARQUET '%s'", c.ExampleFile))
	case c.ExampleTable != "":
		pieces = append(pieces, "LIKE "+c.ExampleTable)
	default:
		decl, err := formatSchema(c.Schema)
		if err != nil {
			return "", err
		}
		pieces = append(pieces, decl)
	}

	pieces = append(pieces, "STORED AS PARQUET")
	if c.Path != "" {
		pieces = append(pieces, fmt.Sprintf("LOCATION '%s'", c.Path))
	}
	return joinPieces(pieces), nil
}

// CreateTableAvro creates an Avro-backed table whose schema is carried
// in the avro.schema.literal table property.
type CreateTableAvro struct {
	Name       string
	Database   string
	Path       string
	AvroSchema any
	External   bool
	CanExist   bool
}

// NewCreateTableAvro returns a CreateTableAvro with the usual defaults
// for file-backed tables (external).
func NewCreateTableAvro(name, database, path string, avroSchema any) *CreateTableAvro {
	return &CreateTableAvro{Name: name, Database: database, Path: path, AvroSchema: avroSchema, External: true}
}

func (c *CreateTableAvro) Compile() (string, error) {
	clauses, err := AvroFormat{Path: c.Path, Schema: c.AvroSchema}.Clauses()
	if err != nil {
		return "", fmt.Errorf("create table %s: %w", c.Name, err)
	}
	pieces := []string{
		createTableLine(c.Name, c.Database, c.External, c.CanExist),
		strings.Join(clauses, "\n"),
	}
	return joinPieces(pieces), nil
}

// CreateTableDelimited creates a delimited-text table with an explicit
// schema.
type CreateTableDelimited struct {
	Name           string
	Database       string
	Path           string
	Schema         *Schema
	Delimiter      string
	EscapeChar     string
	LineTerminator string
	NullFormat     string
	PartitionedBy  []string
	External       bool
	CanExist       bool
}

// NewCreateTableDelimited returns a CreateTableDelimited with the usual
// defaults for file-backed tables (external).
func NewCreateTableDelimited(name, database, path string, schema *Schema) *CreateTableDelimited {
	return &CreateTableDelimited{Name: name, Database: database, Path: path, Schema: schema, External: true}
}

func (c *CreateTableDelimited) Compile() (string, error) {
	inner := &CreateTableWithSchema{
		Name:          c.Name,
		Database:      c.Database,
		Schema:        c.Schema,
		PartitionedBy: c.PartitionedBy,
		External:      c.External,
		CanExist:      c.CanExist,
		Format: DelimitedFormat{
			Path:           c.Path,
			Delimiter:      c.Delimiter,
			EscapeChar:     c.EscapeChar,
			LineTerminator: c.LineTerminator,
			NullFormat:     c.NullFormat,
		},
	}
	return inner.Compile()
}

// CTAS creates a table from the result of a select statement.
type CTAS struct {
	Name       string
	Database   string
	Select     string // already-compiled select statement text
	FileFormat string // defaults to PARQUET
	Path       string
	External   bool
	CanExist   bool
}

func (c *CTAS) Compile() (string, error) {
	if c.Select == "" {
		return "", fmt.Errorf("create table %s: select statement required", c.Name)
	}
	storage, location, err := storedAs(c.FileFormat, c.Path)
	if err != nil {
		return "", err
	}
	pieces := []string{
		createTableLine(c.Name, c.Database, c.External, c.CanExist),
		storage,
		location,
		"AS",
		c.Select,
	}
	return joinPieces(pieces), nil
}

// CreateView creates a view over a select statement.
type CreateView struct {
	Name     string
	Database string
	Select   string // already-compiled select statement text
	CanExist bool
}

func (c *CreateView) Compile() (string, error) {
	if c.Select == "" {
		return "", fmt.Errorf("create view %s: select statement required", c.Name)
	}
	ifNotExists := ""
	if c.CanExist {
		ifNotExists = "IF NOT EXISTS "
	}
	pieces := []string{
		fmt.Sprintf("CREATE VIEW %s%s", ifNotExists, scopedName(c.Name, c.Database)),
		"AS",
		c.Select,
	}
	return joinPieces(pieces), nil
}

// CreateDatabase creates a database, optionally rooted at an explicit
// filesystem location.
type CreateDatabase struct {
	Name     string
	Path     string
	CanExist bool
}

func (c *CreateDatabase) Compile() (string, error) {
	if c.Name == "" {
		return "", fmt.Errorf("create database: name required")
	}
	ifNotExists := ""
	if c.CanExist {
		ifNotExists = "IF NOT EXISTS "
	}
	stmt := fmt.Sprintf("CREATE DATABASE %s%s", ifNotExists, QuoteIdentifier(c.Name))
	if c.Path != "" {
		stmt += fmt.Sprintf("\nLOCATION '%s'", c.Path)
	}
	return stmt, nil
}
