package ddl

import (
	"fmt"
	"strings"
)

// ScalarFunction describes a UDF backed by a native library: its SQL
// signature plus the library path and entry symbol.
type ScalarFunction struct {
	Name    string
	Inputs  []DataType
	Output  DataType
	LibPath string
	Symbol  string
}

// AggregateFunction describes a UDA. The engine drives the aggregation
// through up to five phase symbols; phases left empty are omitted from
// the declaration.
type AggregateFunction struct {
	Name        string
	Inputs      []DataType
	Output      DataType
	LibPath     string
	InitFn      string
	UpdateFn    string
	MergeFn     string
	SerializeFn string
	FinalizeFn  string
}

// formatInputSignature spells a function's input type list.
func formatInputSignature(inputs []DataType) (string, error) {
	parts := make([]string, len(inputs))
	for i, t := range inputs {
		sql, err := t.SQL()
		if err != nil {
			return "", fmt.Errorf("input %d: %w", i, err)
		}
		parts[i] = sql
	}
	return strings.Join(parts, ", "), nil
}

// functionSignature renders `db.name(inputs) returns output`.
func functionSignature(name, database string, inputs []DataType, output DataType) (string, error) {
	inputSig, err := formatInputSignature(inputs)
	if err != nil {
		return "", err
	}
	outputSig, err := output.SQL()
	if err != nil {
		return "", fmt.Errorf("output: %w", err)
	}
	return fmt.Sprintf("%s(%s) returns %s", scopedName(name, database), inputSig, outputSig), nil
}

// CreateUDF declares a scalar function. Name overrides the descriptor's
// own name when set.
type CreateUDF struct {
	Func     ScalarFunction
	Name     string
	Database string
}

func (c *CreateUDF) Compile() (string, error) {
	name := c.Name
	if name == "" {
		name = c.Func.Name
	}
	if c.Func.LibPath == "" || c.Func.Symbol == "" {
		return "", fmt.Errorf("create function %s: library path and symbol required", name)
	}
	sig, err := functionSignature(name, c.Database, c.Func.Inputs, c.Func.Output)
	if err != nil {
		return "", fmt.Errorf("create function %s: %w", name, err)
	}
	paramLine := fmt.Sprintf("location '%s' symbol='%s'", c.Func.LibPath, c.Func.Symbol)
	return strings.Join([]string{"CREATE FUNCTION", sig, paramLine}, " "), nil
}

// CreateUDA declares an aggregate function. The location token and the
// configured phase symbols are emitted one per line after the
// signature, in canonical phase order.
type CreateUDA struct {
	Func     AggregateFunction
	Name     string
	Database string
}

func (c *CreateUDA) Compile() (string, error) {
	name := c.Name
	if name == "" {
		name = c.Func.Name
	}
	if c.Func.LibPath == "" {
		return "", fmt.Errorf("create aggregate function %s: library path required", name)
	}
	sig, err := functionSignature(name, c.Database, c.Func.Inputs, c.Func.Output)
	if err != nil {
		return "", fmt.Errorf("create aggregate function %s: %w", name, err)
	}

	tokens := []string{fmt.Sprintf("location '%s'", c.Func.LibPath)}
	phases := []struct {
		keyword string
		symbol  string
	}{
		{"init_fn", c.Func.InitFn},
		{"update_fn", c.Func.UpdateFn},
		{"merge_fn", c.Func.MergeFn},
		{"serialize_fn", c.Func.SerializeFn},
		{"finalize_fn", c.Func.FinalizeFn},
	}
	for _, phase := range phases {
		if phase.symbol != "" {
			tokens = append(tokens, fmt.Sprintf("%s='%s'", phase.keyword, phase.symbol))
		}
	}

	return "CREATE AGGREGATE FUNCTION " + sig + " " + strings.Join(tokens, "\n"), nil
}

// DropFunction drops a scalar or aggregate function. Impala resolves
// function overloads by input signature, so the input type list is part
// of the statement.
type DropFunction struct {
	Name      string
	Inputs    []DataType
	Database  string
	Aggregate bool
	MustExist bool
}

func (d *DropFunction) Compile() (string, error) {
	inputSig, err := formatInputSignature(d.Inputs)
	if err != nil {
		return "", fmt.Errorf("drop function %s: %w", d.Name, err)
	}

	tokens := []string{"DROP"}
	if d.Aggregate {
		tokens = append(tokens, "AGGREGATE")
	}
	tokens = append(tokens, "FUNCTION")
	if !d.MustExist {
		tokens = append(tokens, "IF EXISTS")
	}
	tokens = append(tokens, fmt.Sprintf("%s(%s)", scopedName(d.Name, d.Database), inputSig))
	return strings.Join(tokens, " "), nil
}

// ListFunction lists the functions of a database, optionally filtered
// by a LIKE pattern.
type ListFunction struct {
	Database  string
	Like      string
	Aggregate bool
}

func (l *ListFunction) Compile() (string, error) {
	if l.Database == "" {
		return "", fmt.Errorf("show functions: database required")
	}
	stmt := "SHOW "
	if l.Aggregate {
		stmt += "AGGREGATE "
	}
	stmt += "FUNCTIONS IN " + l.Database
	if l.Like != "" {
		stmt += fmt.Sprintf(" LIKE '%s'", l.Like)
	}
	return stmt, nil
}
