package ddl

import (
	"fmt"
	"strings"
)

// AlterTable sets table-level storage attributes: location, file
// format, table properties, serde properties. At least one change must
// be requested.
type AlterTable struct {
	Table           string // fully qualified table reference
	Location        string
	FileFormat      string
	TblProperties   map[string]string
	SerdeProperties map[string]string
}

func (a *AlterTable) Compile() (string, error) {
	props, err := formatAlterProperties(a.Location, a.FileFormat, a.TblProperties, a.SerdeProperties, "")
	if err != nil {
		return "", fmt.Errorf("alter table %s: %w", a.Table, err)
	}
	if props == "" {
		return "", fmt.Errorf("alter table %s: no changes requested", a.Table)
	}
	return fmt.Sprintf("ALTER TABLE %s SET %s", a.Table, props), nil
}

// formatAlterProperties renders the SET clause body shared by AlterTable
// and the partition statements. The result is empty when nothing is
// configured, otherwise a leading newline followed by prefixed,
// newline-joined clauses.
func formatAlterProperties(location, format string, tblProps, serdeProps map[string]string, prefix string) (string, error) {
	var tokens []string

	if location != "" {
		tokens = append(tokens, fmt.Sprintf("LOCATION '%s'", location))
	}
	if format != "" {
		sanitized, err := sanitizeFileFormat(format)
		if err != nil {
			return "", err
		}
		tokens = append(tokens, "FILEFORMAT "+sanitized)
	}
	if len(tblProps) > 0 {
		tokens = append(tokens, formatTblProperties(tblProps))
	}
	if len(serdeProps) > 0 {
		tokens = append(tokens, formatSerdeProperties(serdeProps))
	}

	if len(tokens) == 0 {
		return "", nil
	}
	return "\n" + prefix + strings.Join(tokens, "\n"), nil
}

// AddPartition adds a partition to a table, optionally at an explicit
// location.
type AddPartition struct {
	Table     string
	Partition *PartitionSpec
	Schema    *Schema // partition schema
	Location  string
}

func (a *AddPartition) Compile() (string, error) {
	part, err := formatPartition(a.Partition, a.Schema)
	if err != nil {
		return "", fmt.Errorf("add partition on %s: %w", a.Table, err)
	}
	props, err := formatAlterProperties(a.Location, "", nil, nil, "")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ALTER TABLE %s ADD %s%s", a.Table, part, props), nil
}

// AlterPartition sets storage attributes on an existing partition.
type AlterPartition struct {
	Table           string
	Partition       *PartitionSpec
	Schema          *Schema // partition schema
	Location        string
	FileFormat      string
	TblProperties   map[string]string
	SerdeProperties map[string]string
}

func (a *AlterPartition) Compile() (string, error) {
	part, err := formatPartition(a.Partition, a.Schema)
	if err != nil {
		return "", fmt.Errorf("alter partition on %s: %w", a.Table, err)
	}
	props, err := formatAlterProperties(a.Location, a.FileFormat, a.TblProperties, a.SerdeProperties, "SET ")
	if err != nil {
		return "", fmt.Errorf("alter partition on %s: %w", a.Table, err)
	}
	if props == "" {
		return "", fmt.Errorf("alter partition on %s: no changes requested", a.Table)
	}
	return fmt.Sprintf("ALTER TABLE %s %s%s", a.Table, part, props), nil
}

// DropPartition removes a partition from a table.
type DropPartition struct {
	Table     string
	Partition *PartitionSpec
	Schema    *Schema // partition schema
}

func (d *DropPartition) Compile() (string, error) {
	part, err := formatPartition(d.Partition, d.Schema)
	if err != nil {
		return "", fmt.Errorf("drop partition on %s: %w", d.Table, err)
	}
	return fmt.Sprintf("ALTER TABLE %s DROP %s", d.Table, part), nil
}

// RenameTable renames a table, possibly across databases. Each side is
// resolved independently: a side without a database is assumed to be
// already fully qualified.
type RenameTable struct {
	OldName     string
	NewName     string
	OldDatabase string
	NewDatabase string
}

func (r *RenameTable) Compile() (string, error) {
	oldName := scopedName(r.OldName, r.OldDatabase)
	newName := scopedName(r.NewName, r.NewDatabase)
	return fmt.Sprintf("ALTER TABLE %s RENAME TO %s", oldName, newName), nil
}

// TruncateTable removes all rows from a table.
type TruncateTable struct {
	Name     string
	Database string
}

func (t *TruncateTable) Compile() (string, error) {
	return "TRUNCATE TABLE " + scopedName(t.Name, t.Database), nil
}

// CacheTable requests HDFS caching of a table in a named cache pool.
type CacheTable struct {
	Name     string
	Database string
	Pool     string // cache pool name; "default" when empty
}

func (c *CacheTable) Compile() (string, error) {
	pool := c.Pool
	if pool == "" {
		pool = "default"
	}
	return fmt.Sprintf("ALTER TABLE %s SET CACHED IN '%s'", scopedName(c.Name, c.Database), pool), nil
}
