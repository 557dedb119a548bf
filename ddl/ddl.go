// Package ddl compiles structured descriptions of database objects —
// tables, partitions, views and functions — into Impala-dialect SQL
// statement text.
//
// Every statement is an immutable value constructed from already-resolved
// inputs (names, schemas, paths, property maps) and exposes a single
// Compile call returning the complete statement string. The package
// performs no I/O and never talks to an engine; submitting the text is
// the caller's business.
//
// Output is deterministic: property blocks are emitted in sorted key
// order and partition columns in partition-schema order, so compiling
// the same statement twice yields identical text.
package ddl

import (
	"fmt"
	"strings"
)

// Statement is the contract shared by every DDL and DML variant in this
// package. Compile returns the finished statement text or an error; on
// error no partial text is returned.
type Statement interface {
	Compile() (string, error)
}

// scopedName qualifies an object name with its database. An empty
// database means the name is already fully qualified by the caller; no
// default is ever inferred.
func scopedName(name, database string) string {
	if database != "" {
		return database + "." + name
	}
	return name
}

// sanitizeFileFormat normalizes a storage format name for STORED AS and
// SET FILEFORMAT clauses. The empty string passes through so optional
// format fields stay optional.
func sanitizeFileFormat(format string) (string, error) {
	switch strings.ToUpper(format) {
	case "":
		return "", nil
	case "TEXT", "TEXTFILE":
		return "TEXTFILE", nil
	case "PARQUET":
		return "PARQUET", nil
	case "AVRO":
		return "AVRO", nil
	}
	return "", fmt.Errorf("invalid file format: %q", format)
}
