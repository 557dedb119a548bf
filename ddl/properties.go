package ddl

import (
	"fmt"
	"sort"
	"strings"
)

// formatProperties renders a property map as a parenthesized block with
// entries sorted by key, one per line:
//
//	(
//	  'k1'='v1',
//	  'k2'='v2'
//	)
//
// Keys and values are embedded between single quotes verbatim: no quote
// escaping is applied. Supplying values free of embedded single quotes
// is the caller's contract.
func formatProperties(props map[string]string) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tokens := make([]string, len(keys))
	for i, k := range keys {
		tokens[i] = fmt.Sprintf("  '%s'='%s'", k, props[k])
	}
	return "(\n" + strings.Join(tokens, ",\n") + "\n)"
}

// formatTblProperties renders a TBLPROPERTIES block.
func formatTblProperties(props map[string]string) string {
	return "TBLPROPERTIES " + formatProperties(props)
}

// formatSerdeProperties renders a SERDEPROPERTIES block.
func formatSerdeProperties(props map[string]string) string {
	return "SERDEPROPERTIES " + formatProperties(props)
}
