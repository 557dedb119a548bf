package ddl

import (
	"strings"
	"testing"
)

func TestCreateUDF(t *testing.T) {
	stmt := &CreateUDF{
		Func: ScalarFunction{
			Name:    "fuzz",
			Inputs:  []DataType{Int32(), String()},
			Output:  Int64(),
			LibPath: "/udfs/libfuzz.so",
			Symbol:  "Fuzz",
		},
		Database: "db",
	}
	assertCompile(t, stmt,
		"CREATE FUNCTION db.fuzz(int, string) returns bigint location '/udfs/libfuzz.so' symbol='Fuzz'")
}

func TestCreateUDFNameOverride(t *testing.T) {
	stmt := &CreateUDF{
		Func: ScalarFunction{
			Name:    "fuzz",
			Output:  Boolean(),
			LibPath: "/udfs/libfuzz.so",
			Symbol:  "Fuzz",
		},
		Name: "fuzz_v2",
	}
	assertCompile(t, stmt,
		"CREATE FUNCTION fuzz_v2() returns boolean location '/udfs/libfuzz.so' symbol='Fuzz'")
}

func TestCreateUDFErrors(t *testing.T) {
	// missing symbol
	assertCompileError(t, &CreateUDF{
		Func: ScalarFunction{Name: "f", Output: Int32(), LibPath: "/lib.so"},
	})
	// unsupported input type
	assertCompileError(t, &CreateUDF{
		Func: ScalarFunction{
			Name:    "f",
			Inputs:  []DataType{{Kind: "json"}},
			Output:  Int32(),
			LibPath: "/lib.so",
			Symbol:  "F",
		},
	})
}

func TestCreateUDA(t *testing.T) {
	stmt := &CreateUDA{
		Func: AggregateFunction{
			Name:       "my_avg",
			Inputs:     []DataType{Float64()},
			Output:     Float64(),
			LibPath:    "/udfs/libagg.so",
			InitFn:     "Init",
			UpdateFn:   "Update",
			MergeFn:    "Merge",
			FinalizeFn: "Finalize",
		},
		Database: "db",
	}
	want := strings.Join([]string{
		"CREATE AGGREGATE FUNCTION db.my_avg(double) returns double location '/udfs/libagg.so'",
		"init_fn='Init'",
		"update_fn='Update'",
		"merge_fn='Merge'",
		"finalize_fn='Finalize'",
	}, "\n")
	assertCompile(t, stmt, want)
}

// Phases left unset are omitted entirely from the declaration.
func TestCreateUDAOmitsUnsetPhases(t *testing.T) {
	stmt := &CreateUDA{
		Func: AggregateFunction{
			Name:     "my_count",
			Output:   Int64(),
			LibPath:  "/udfs/libagg.so",
			UpdateFn: "Update",
		},
	}
	want := strings.Join([]string{
		"CREATE AGGREGATE FUNCTION my_count() returns bigint location '/udfs/libagg.so'",
		"update_fn='Update'",
	}, "\n")
	assertCompile(t, stmt, want)
}

// All phase symbols are optional; a declaration can carry the library
// location alone.
func TestCreateUDANoPhases(t *testing.T) {
	stmt := &CreateUDA{
		Func: AggregateFunction{Name: "f", Output: Int64(), LibPath: "/lib.so"},
	}
	assertCompile(t, stmt,
		"CREATE AGGREGATE FUNCTION f() returns bigint location '/lib.so'")
}

func TestCreateUDAErrors(t *testing.T) {
	// no library
	assertCompileError(t, &CreateUDA{
		Func: AggregateFunction{Name: "f", Output: Int64(), UpdateFn: "U"},
	})
}

func TestDropFunction(t *testing.T) {
	stmt := &DropFunction{
		Name:      "f",
		Inputs:    []DataType{Int32(), Int32()},
		Database:  "db",
		Aggregate: true,
	}
	assertCompile(t, stmt, "DROP AGGREGATE FUNCTION IF EXISTS db.f(int, int)")

	scalar := &DropFunction{
		Name:      "f",
		Inputs:    []DataType{String()},
		MustExist: true,
	}
	assertCompile(t, scalar, "DROP FUNCTION f(string)")
}

func TestListFunction(t *testing.T) {
	assertCompile(t, &ListFunction{Database: "db"}, "SHOW FUNCTIONS IN db")
	assertCompile(t, &ListFunction{Database: "db", Aggregate: true},
		"SHOW AGGREGATE FUNCTIONS IN db")
	assertCompile(t, &ListFunction{Database: "db", Like: "impala*"},
		"SHOW FUNCTIONS IN db LIKE 'impala*'")
	assertCompileError(t, &ListFunction{})
}
