package ddl

import (
	"strings"
	"unicode"
)

// Impala reserved words that need quoting when used as identifiers.
// Based on the Impala SQL reference keyword appendix.
var reservedWords = map[string]bool{
	// A-C
	"add":         true,
	"aggregate":   true,
	"all":         true,
	"alter":       true,
	"and":         true,
	"api_version": true,
	"array":       true,
	"as":          true,
	"asc":         true,
	"avro":        true,
	"between":     true,
	"bigint":      true,
	"binary":      true,
	"boolean":     true,
	"by":          true,
	"cached":      true,
	"case":        true,
	"cast":        true,
	"change":      true,
	"char":        true,
	"class":       true,
	"close_fn":    true,
	"column":      true,
	"columns":     true,
	"comment":     true,
	"compute":     true,
	"create":      true,
	"cross":       true,
	// D-F
	"data":         true,
	"database":     true,
	"databases":    true,
	"date":         true,
	"datetime":     true,
	"decimal":      true,
	"delete":       true,
	"delimited":    true,
	"desc":         true,
	"describe":     true,
	"distinct":     true,
	"div":          true,
	"double":       true,
	"drop":         true,
	"else":         true,
	"end":          true,
	"escaped":      true,
	"exists":       true,
	"explain":      true,
	"external":     true,
	"false":        true,
	"fields":       true,
	"fileformat":   true,
	"finalize_fn":  true,
	"first":        true,
	"float":        true,
	"format":       true,
	"formatted":    true,
	"from":         true,
	"full":         true,
	"function":     true,
	"functions":    true,
	// G-L
	"grant":        true,
	"group":        true,
	"having":       true,
	"if":           true,
	"in":           true,
	"incremental":  true,
	"init_fn":      true,
	"inner":        true,
	"inpath":       true,
	"insert":       true,
	"int":          true,
	"integer":      true,
	"intermediate": true,
	"interval":     true,
	"into":         true,
	"invalidate":   true,
	"is":           true,
	"join":         true,
	"last":         true,
	"left":         true,
	"like":         true,
	"limit":        true,
	"lines":        true,
	"load":         true,
	"location":     true,
	// M-P
	"map":          true,
	"merge_fn":     true,
	"metadata":     true,
	"not":          true,
	"null":         true,
	"nulls":        true,
	"offset":       true,
	"on":           true,
	"or":           true,
	"order":        true,
	"outer":        true,
	"overwrite":    true,
	"parquet":      true,
	"parquetfile":  true,
	"partition":    true,
	"partitioned":  true,
	"partitions":   true,
	"prepare_fn":   true,
	"produced":     true,
	// R-S
	"range":           true,
	"rcfile":          true,
	"real":            true,
	"refresh":         true,
	"regexp":          true,
	"rename":          true,
	"replace":         true,
	"returns":         true,
	"revoke":          true,
	"right":           true,
	"rlike":           true,
	"row":             true,
	"schema":          true,
	"schemas":         true,
	"select":          true,
	"semi":            true,
	"sequencefile":    true,
	"serdeproperties": true,
	"serialize_fn":    true,
	"set":             true,
	"show":            true,
	"smallint":        true,
	"stats":           true,
	"stored":          true,
	"straight_join":   true,
	"string":          true,
	"struct":          true,
	"symbol":          true,
	// T-W
	"table":         true,
	"tables":        true,
	"tblproperties": true,
	"terminated":    true,
	"textfile":      true,
	"then":          true,
	"timestamp":     true,
	"tinyint":       true,
	"to":            true,
	"true":          true,
	"truncate":      true,
	"uncached":      true,
	"union":         true,
	"update_fn":     true,
	"use":           true,
	"using":         true,
	"values":        true,
	"varchar":       true,
	"view":          true,
	"when":          true,
	"where":         true,
	"with":          true,
}

// NeedsQuoting checks if an identifier needs to be backtick-quoted.
func NeedsQuoting(identifier string) bool {
	if identifier == "" {
		return false
	}

	// Check if it's a reserved word. Impala identifiers are
	// case-insensitive.
	if reservedWords[strings.ToLower(identifier)] {
		return true
	}

	// Check if it starts with a non-letter or contains special characters
	for i, r := range identifier {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return true
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return true
		}
	}

	return false
}

// QuoteIdentifier adds backticks around an identifier if needed.
func QuoteIdentifier(identifier string) string {
	if NeedsQuoting(identifier) {
		return "`" + identifier + "`"
	}
	return identifier
}

// quoteAlways backticks an identifier unconditionally. Column names in
// schema declarations are always quoted so generated DDL never trips
// over a column that shadows a keyword.
func quoteAlways(identifier string) string {
	return "`" + identifier + "`"
}
