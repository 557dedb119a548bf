package ddl

import (
	"strings"
	"testing"
)

func TestCreateTableDelimited(t *testing.T) {
	schema := mustSchema(t,
		Column{Name: "a", Type: Int32()},
		Column{Name: "b", Type: String()},
	)
	stmt := NewCreateTableDelimited("t", "", "/data", schema)
	stmt.Delimiter = ","

	want := strings.Join([]string{
		"CREATE EXTERNAL TABLE t",
		"(`a` int,",
		" `b` string)",
		"ROW FORMAT DELIMITED",
		"FIELDS TERMINATED BY ','",
		"LOCATION '/data'",
	}, "\n")
	assertCompile(t, stmt, want)
}

func TestCreateTableDelimitedPartitioned(t *testing.T) {
	schema := mustSchema(t,
		Column{Name: "a", Type: Int32()},
		Column{Name: "b", Type: String()},
		Column{Name: "ds", Type: String()},
	)
	stmt := NewCreateTableDelimited("t", "db", "/data", schema)
	stmt.Delimiter = ","
	stmt.PartitionedBy = []string{"ds"}

	want := strings.Join([]string{
		"CREATE EXTERNAL TABLE db.t",
		"(`a` int,",
		" `b` string)",
		"PARTITIONED BY (`ds` string)",
		"ROW FORMAT DELIMITED",
		"FIELDS TERMINATED BY ','",
		"LOCATION '/data'",
	}, "\n")
	assertCompile(t, stmt, want)
}

func TestCreateTableWithSchemaDefaults(t *testing.T) {
	schema := mustSchema(t, Column{Name: "a", Type: Int64()})
	stmt := &CreateTableWithSchema{Name: "t", Database: "db", Schema: schema}

	want := strings.Join([]string{
		"CREATE TABLE db.t",
		"(`a` bigint)",
		"STORED AS PARQUET",
	}, "\n")
	assertCompile(t, stmt, want)
}

func TestCreateTableWithSchemaIfNotExists(t *testing.T) {
	schema := mustSchema(t, Column{Name: "a", Type: Int64()})
	stmt := &CreateTableWithSchema{
		Name:       "t",
		Schema:     schema,
		FileFormat: "text",
		Path:       "/data/t",
		CanExist:   true,
	}

	want := strings.Join([]string{
		"CREATE TABLE IF NOT EXISTS t",
		"(`a` bigint)",
		"STORED AS TEXTFILE",
		"LOCATION '/data/t'",
	}, "\n")
	assertCompile(t, stmt, want)
}

func TestCreateTableWithSchemaErrors(t *testing.T) {
	schema := mustSchema(t, Column{Name: "ds", Type: String()})
	tests := []struct {
		name string
		stmt *CreateTableWithSchema
	}{
		{"no schema", &CreateTableWithSchema{Name: "t"}},
		{"unknown partition column", &CreateTableWithSchema{
			Name: "t", Schema: schema, PartitionedBy: []string{"nope"},
		}},
		{"all columns partitioned", &CreateTableWithSchema{
			Name: "t", Schema: schema, PartitionedBy: []string{"ds"},
		}},
		{"bad file format", &CreateTableWithSchema{
			Name: "t", Schema: schema, FileFormat: "orc",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertCompileError(t, tt.stmt)
		})
	}
}

func TestCreateTableParquetLikeFile(t *testing.T) {
	stmt := NewCreateTableParquet("t", "db", "/data/t")
	stmt.ExampleFile = "/data/sample.parq"

	want := strings.Join([]string{
		"CREATE EXTERNAL TABLE db.t",
		"LIKE PARQUET '/data/sample.parq'",
		"STORED AS PARQUET",
		"LOCATION '/data/t'",
	}, "\n")
	assertCompile(t, stmt, want)
}

func TestCreateTableParquetLikeTable(t *testing.T) {
	stmt := NewCreateTableParquet("t", "", "/data/t")
	stmt.ExampleTable = "db.src"

	want := strings.Join([]string{
		"CREATE EXTERNAL TABLE t",
		"LIKE db.src",
		"STORED AS PARQUET",
		"LOCATION '/data/t'",
	}, "\n")
	assertCompile(t, stmt, want)
}

func TestCreateTableParquetWithSchema(t *testing.T) {
	stmt := NewCreateTableParquet("t", "", "/data/t")
	stmt.Schema = mustSchema(t, Column{Name: "a", Type: Timestamp()})

	want := strings.Join([]string{
		"CREATE EXTERNAL TABLE t",
		"(`a` timestamp)",
		"STORED AS PARQUET",
		"LOCATION '/data/t'",
	}, "\n")
	assertCompile(t, stmt, want)
}

// A Parquet create must have exactly one schema source; zero or several
// is a configuration error caught before any text is produced.
func TestCreateTableParquetSchemaSourceExactlyOne(t *testing.T) {
	none := NewCreateTableParquet("t", "", "/data/t")
	assertCompileError(t, none)

	both := NewCreateTableParquet("t", "", "/data/t")
	both.ExampleFile = "/data/sample.parq"
	both.ExampleTable = "db.src"
	assertCompileError(t, both)
}

func TestCreateTableAvro(t *testing.T) {
	schema := map[string]any{
		"type":   "record",
		"name":   "r",
		"fields": []map[string]any{{"name": "a", "type": "int"}},
	}
	stmt := NewCreateTableAvro("t", "db", "/data/t", schema)

	got, err := stmt.Compile()
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	wantPrefix := strings.Join([]string{
		"CREATE EXTERNAL TABLE db.t",
		"STORED AS AVRO",
		"LOCATION '/data/t'",
		"TBLPROPERTIES (",
		"  'avro.schema.literal'='{",
	}, "\n")
	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("Compile() = %q; want prefix %q", got, wantPrefix)
	}
}

func TestCreateTableAvroInvalidSchema(t *testing.T) {
	stmt := NewCreateTableAvro("t", "db", "/data/t", map[string]any{"type": "bogus"})
	assertCompileError(t, stmt)
}

func TestCTAS(t *testing.T) {
	stmt := &CTAS{
		Name:     "summary",
		Database: "db",
		Select:   "SELECT a, count(*) FROM db.t GROUP BY a",
	}
	want := strings.Join([]string{
		"CREATE TABLE db.summary",
		"STORED AS PARQUET",
		"AS",
		"SELECT a, count(*) FROM db.t GROUP BY a",
	}, "\n")
	assertCompile(t, stmt, want)

	assertCompileError(t, &CTAS{Name: "summary"})
}

func TestCreateView(t *testing.T) {
	stmt := &CreateView{Name: "v", Database: "db", Select: "SELECT * FROM db.t"}
	want := strings.Join([]string{
		"CREATE VIEW db.v",
		"AS",
		"SELECT * FROM db.t",
	}, "\n")
	assertCompile(t, stmt, want)

	exists := &CreateView{Name: "v", Select: "SELECT 1", CanExist: true}
	want = strings.Join([]string{
		"CREATE VIEW IF NOT EXISTS v",
		"AS",
		"SELECT 1",
	}, "\n")
	assertCompile(t, exists, want)

	assertCompileError(t, &CreateView{Name: "v"})
}

func TestCreateDatabase(t *testing.T) {
	assertCompile(t, &CreateDatabase{Name: "analytics"}, "CREATE DATABASE analytics")
	assertCompile(t,
		&CreateDatabase{Name: "analytics", Path: "/warehouse/analytics", CanExist: true},
		"CREATE DATABASE IF NOT EXISTS analytics\nLOCATION '/warehouse/analytics'")
	assertCompileError(t, &CreateDatabase{})
}
