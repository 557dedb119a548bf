// Package manifest parses YAML statement manifests into compilable
// statements. A manifest is the file format consumed by `hqlgen
// generate`: a list of statement entries, each selected by a kind tag
// and carrying the fields that statement needs.
package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hqlgen/hqlgen/ddl"
)

// Manifest is a parsed statement manifest.
type Manifest struct {
	Statements []Entry `yaml:"statements"`
}

// ColumnSpec declares one schema column with its type spelling, e.g.
// {name: amount, type: "decimal(12, 2)"}.
type ColumnSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Entry is one statement in a manifest. Kind selects the statement;
// the other fields are interpreted per kind and unused ones must stay
// empty.
type Entry struct {
	Kind string `yaml:"kind"`

	// Object naming. Name plus optional Database for statements that
	// resolve their own scope; Table for statements addressing an
	// already-qualified table reference.
	Name     string `yaml:"name"`
	Database string `yaml:"database"`
	Table    string `yaml:"table"`

	// Create-table shape.
	Format         string         `yaml:"format"` // delimited | avro | parquet | text
	Location       string         `yaml:"location"`
	External       *bool          `yaml:"external"` // file-backed creates default to true
	IfNotExists    bool           `yaml:"if-not-exists"`
	LikeFile       string         `yaml:"like-file"`
	LikeTable      string         `yaml:"like-table"`
	Columns        []ColumnSpec   `yaml:"columns"`
	PartitionedBy  []string       `yaml:"partitioned-by"`
	Delimiter      string         `yaml:"delimiter"`
	EscapeChar     string         `yaml:"escape-char"`
	LineTerminator string         `yaml:"line-terminator"`
	NullFormat     string         `yaml:"null-format"`
	AvroSchema     map[string]any `yaml:"avro-schema"`

	// Alter-table attributes.
	FileFormat      string            `yaml:"file-format"`
	TblProperties   map[string]string `yaml:"tbl-properties"`
	SerdeProperties map[string]string `yaml:"serde-properties"`

	// Partition addressing: a map (named values, dynamic columns
	// allowed) or a list (positional).
	Partition       any          `yaml:"partition"`
	PartitionSchema []ColumnSpec `yaml:"partition-schema"`

	// DML.
	Select    string `yaml:"select"`
	Path      string `yaml:"path"`
	Overwrite bool   `yaml:"overwrite"`

	// Rename.
	NewName     string `yaml:"new-name"`
	NewDatabase string `yaml:"new-database"`

	// Cache.
	Pool string `yaml:"pool"`

	// Drop family.
	IfExists bool `yaml:"if-exists"`

	// Functions.
	Inputs      []string `yaml:"inputs"`
	Returns     string   `yaml:"returns"`
	Library     string   `yaml:"library"`
	Symbol      string   `yaml:"symbol"`
	InitFn      string   `yaml:"init-fn"`
	UpdateFn    string   `yaml:"update-fn"`
	MergeFn     string   `yaml:"merge-fn"`
	SerializeFn string   `yaml:"serialize-fn"`
	FinalizeFn  string   `yaml:"finalize-fn"`
	Aggregate   bool     `yaml:"aggregate"`
	Like        string   `yaml:"like"`
}

// Parse decodes a YAML manifest document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(m.Statements) == 0 {
		return nil, fmt.Errorf("manifest contains no statements")
	}
	return &m, nil
}

// Build converts every entry into its statement. The first invalid
// entry aborts the build with an error naming its position.
func (m *Manifest) Build() ([]ddl.Statement, error) {
	statements := make([]ddl.Statement, len(m.Statements))
	for i, entry := range m.Statements {
		stmt, err := entry.build()
		if err != nil {
			return nil, fmt.Errorf("statement %d (%s): %w", i, entry.Kind, err)
		}
		statements[i] = stmt
	}
	return statements, nil
}

func (e *Entry) build() (ddl.Statement, error) {
	switch e.Kind {
	case "create-database":
		return &ddl.CreateDatabase{Name: e.Name, Path: e.Location, CanExist: e.IfNotExists}, nil
	case "drop-database":
		return &ddl.DropDatabase{Name: e.Name, MustExist: !e.IfExists}, nil
	case "create-table":
		return e.buildCreateTable()
	case "create-view":
		return &ddl.CreateView{Name: e.Name, Database: e.Database, Select: e.Select, CanExist: e.IfNotExists}, nil
	case "ctas":
		return &ddl.CTAS{
			Name:       e.Name,
			Database:   e.Database,
			Select:     e.Select,
			FileFormat: e.Format,
			Path:       e.Location,
			External:   e.external(false),
			CanExist:   e.IfNotExists,
		}, nil
	case "drop-table":
		return &ddl.DropTable{Name: e.Name, Database: e.Database, MustExist: !e.IfExists}, nil
	case "drop-view":
		return &ddl.DropView{Name: e.Name, Database: e.Database, MustExist: !e.IfExists}, nil
	case "rename-table":
		return &ddl.RenameTable{
			OldName:     e.Name,
			OldDatabase: e.Database,
			NewName:     e.NewName,
			NewDatabase: e.NewDatabase,
		}, nil
	case "truncate-table":
		return &ddl.TruncateTable{Name: e.Name, Database: e.Database}, nil
	case "cache-table":
		return &ddl.CacheTable{Name: e.Name, Database: e.Database, Pool: e.Pool}, nil
	case "alter-table":
		return &ddl.AlterTable{
			Table:           e.Table,
			Location:        e.Location,
			FileFormat:      e.FileFormat,
			TblProperties:   e.TblProperties,
			SerdeProperties: e.SerdeProperties,
		}, nil
	case "add-partition":
		spec, schema, err := e.partition()
		if err != nil {
			return nil, err
		}
		return &ddl.AddPartition{Table: e.Table, Partition: spec, Schema: schema, Location: e.Location}, nil
	case "alter-partition":
		spec, schema, err := e.partition()
		if err != nil {
			return nil, err
		}
		return &ddl.AlterPartition{
			Table:           e.Table,
			Partition:       spec,
			Schema:          schema,
			Location:        e.Location,
			FileFormat:      e.FileFormat,
			TblProperties:   e.TblProperties,
			SerdeProperties: e.SerdeProperties,
		}, nil
	case "drop-partition":
		spec, schema, err := e.partition()
		if err != nil {
			return nil, err
		}
		return &ddl.DropPartition{Table: e.Table, Partition: spec, Schema: schema}, nil
	case "insert":
		spec, schema, err := e.optionalPartition()
		if err != nil {
			return nil, err
		}
		return &ddl.InsertSelect{
			Name:            e.Name,
			Database:        e.Database,
			Select:          e.Select,
			Partition:       spec,
			PartitionSchema: schema,
			Overwrite:       e.Overwrite,
		}, nil
	case "load-data":
		spec, schema, err := e.optionalPartition()
		if err != nil {
			return nil, err
		}
		return &ddl.LoadData{
			Name:            e.Name,
			Database:        e.Database,
			Path:            e.Path,
			Partition:       spec,
			PartitionSchema: schema,
			Overwrite:       e.Overwrite,
		}, nil
	case "create-function":
		inputs, output, err := e.functionTypes()
		if err != nil {
			return nil, err
		}
		return &ddl.CreateUDF{
			Func: ddl.ScalarFunction{
				Name:    e.Name,
				Inputs:  inputs,
				Output:  output,
				LibPath: e.Library,
				Symbol:  e.Symbol,
			},
			Database: e.Database,
		}, nil
	case "create-aggregate":
		inputs, output, err := e.functionTypes()
		if err != nil {
			return nil, err
		}
		return &ddl.CreateUDA{
			Func: ddl.AggregateFunction{
				Name:        e.Name,
				Inputs:      inputs,
				Output:      output,
				LibPath:     e.Library,
				InitFn:      e.InitFn,
				UpdateFn:    e.UpdateFn,
				MergeFn:     e.MergeFn,
				SerializeFn: e.SerializeFn,
				FinalizeFn:  e.FinalizeFn,
			},
			Database: e.Database,
		}, nil
	case "drop-function":
		inputs, err := parseTypes(e.Inputs)
		if err != nil {
			return nil, err
		}
		return &ddl.DropFunction{
			Name:      e.Name,
			Inputs:    inputs,
			Database:  e.Database,
			Aggregate: e.Aggregate,
			MustExist: !e.IfExists,
		}, nil
	case "show-functions":
		return &ddl.ListFunction{Database: e.Database, Like: e.Like, Aggregate: e.Aggregate}, nil
	case "":
		return nil, fmt.Errorf("missing kind")
	}
	return nil, fmt.Errorf("unknown kind %q", e.Kind)
}

func (e *Entry) buildCreateTable() (ddl.Statement, error) {
	switch e.Format {
	case "parquet", "":
		if e.LikeFile != "" || e.LikeTable != "" || e.Format == "parquet" {
			stmt := &ddl.CreateTableParquet{
				Name:         e.Name,
				Database:     e.Database,
				Path:         e.Location,
				ExampleFile:  e.LikeFile,
				ExampleTable: e.LikeTable,
				External:     e.external(true),
				CanExist:     e.IfNotExists,
			}
			if len(e.Columns) > 0 {
				schema, err := e.schema()
				if err != nil {
					return nil, err
				}
				stmt.Schema = schema
			}
			return stmt, nil
		}
		// format omitted, plain schema-backed table
		schema, err := e.schema()
		if err != nil {
			return nil, err
		}
		return &ddl.CreateTableWithSchema{
			Name:          e.Name,
			Database:      e.Database,
			Schema:        schema,
			PartitionedBy: e.PartitionedBy,
			FileFormat:    e.FileFormat,
			Path:          e.Location,
			External:      e.external(false),
			CanExist:      e.IfNotExists,
		}, nil
	case "delimited", "text":
		schema, err := e.schema()
		if err != nil {
			return nil, err
		}
		return &ddl.CreateTableDelimited{
			Name:           e.Name,
			Database:       e.Database,
			Path:           e.Location,
			Schema:         schema,
			Delimiter:      e.Delimiter,
			EscapeChar:     e.EscapeChar,
			LineTerminator: e.LineTerminator,
			NullFormat:     e.NullFormat,
			PartitionedBy:  e.PartitionedBy,
			External:       e.external(true),
			CanExist:       e.IfNotExists,
		}, nil
	case "avro":
		return &ddl.CreateTableAvro{
			Name:       e.Name,
			Database:   e.Database,
			Path:       e.Location,
			AvroSchema: e.AvroSchema,
			External:   e.external(true),
			CanExist:   e.IfNotExists,
		}, nil
	}
	return nil, fmt.Errorf("unknown table format %q", e.Format)
}

// external resolves the optional external flag against the per-kind
// default.
func (e *Entry) external(def bool) bool {
	if e.External != nil {
		return *e.External
	}
	return def
}

func (e *Entry) schema() (*ddl.Schema, error) {
	if len(e.Columns) == 0 {
		return nil, fmt.Errorf("columns required")
	}
	return buildSchema(e.Columns)
}

func buildSchema(specs []ColumnSpec) (*ddl.Schema, error) {
	columns := make([]ddl.Column, len(specs))
	for i, spec := range specs {
		typ, err := ddl.ParseType(spec.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", spec.Name, err)
		}
		columns[i] = ddl.Column{Name: spec.Name, Type: typ}
	}
	return ddl.NewSchema(columns...)
}

// partition resolves the required partition spec and schema of the
// partition statement kinds.
func (e *Entry) partition() (*ddl.PartitionSpec, *ddl.Schema, error) {
	spec, schema, err := e.optionalPartition()
	if err != nil {
		return nil, nil, err
	}
	if spec == nil {
		return nil, nil, fmt.Errorf("partition required")
	}
	return spec, schema, nil
}

func (e *Entry) optionalPartition() (*ddl.PartitionSpec, *ddl.Schema, error) {
	if e.Partition == nil {
		return nil, nil, nil
	}
	if len(e.PartitionSchema) == 0 {
		return nil, nil, fmt.Errorf("partition-schema required")
	}
	schema, err := buildSchema(e.PartitionSchema)
	if err != nil {
		return nil, nil, err
	}

	switch p := e.Partition.(type) {
	case map[string]any:
		return ddl.PartitionByName(p), schema, nil
	case []any:
		return ddl.PartitionByPosition(p...), schema, nil
	}
	return nil, nil, fmt.Errorf("partition must be a map or a list, got %T", e.Partition)
}

func (e *Entry) functionTypes() ([]ddl.DataType, ddl.DataType, error) {
	inputs, err := parseTypes(e.Inputs)
	if err != nil {
		return nil, ddl.DataType{}, err
	}
	if e.Returns == "" {
		return nil, ddl.DataType{}, fmt.Errorf("returns required")
	}
	output, err := ddl.ParseType(e.Returns)
	if err != nil {
		return nil, ddl.DataType{}, fmt.Errorf("returns: %w", err)
	}
	return inputs, output, nil
}

func parseTypes(spellings []string) ([]ddl.DataType, error) {
	types := make([]ddl.DataType, len(spellings))
	for i, spelling := range spellings {
		typ, err := ddl.ParseType(spelling)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		types[i] = typ
	}
	return types, nil
}
