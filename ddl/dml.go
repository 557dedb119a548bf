package ddl

import "fmt"

// InsertSelect inserts the result of a select statement into a table,
// appending by default or replacing with Overwrite. A partition spec
// (with its schema) targets the write at a static partition, or a mix
// of static and dynamic partition columns.
type InsertSelect struct {
	Name            string
	Database        string
	Select          string // already-compiled select statement text
	Partition       *PartitionSpec
	PartitionSchema *Schema
	Overwrite       bool
}

func (i *InsertSelect) Compile() (string, error) {
	if i.Select == "" {
		return "", fmt.Errorf("insert into %s: select statement required", i.Name)
	}

	cmd := "INSERT INTO"
	if i.Overwrite {
		cmd = "INSERT OVERWRITE"
	}

	partition := ""
	if i.Partition != nil {
		part, err := formatPartition(i.Partition, i.PartitionSchema)
		if err != nil {
			return "", fmt.Errorf("insert into %s: %w", i.Name, err)
		}
		partition = " " + part + " "
	}

	return fmt.Sprintf("%s %s%s\n%s", cmd, scopedName(i.Name, i.Database), partition, i.Select), nil
}

// LoadData moves already-formatted data files into a table (or a
// partition of it) from a path visible to the engine. The operation
// cannot be cancelled once submitted.
type LoadData struct {
	Name            string
	Database        string
	Path            string
	Partition       *PartitionSpec
	PartitionSchema *Schema
	Overwrite       bool
}

func (l *LoadData) Compile() (string, error) {
	if l.Path == "" {
		return "", fmt.Errorf("load data into %s: source path required", l.Name)
	}

	overwrite := ""
	if l.Overwrite {
		overwrite = "OVERWRITE "
	}

	partition := ""
	if l.Partition != nil {
		part, err := formatPartition(l.Partition, l.PartitionSchema)
		if err != nil {
			return "", fmt.Errorf("load data into %s: %w", l.Name, err)
		}
		partition = "\n" + part
	}

	return fmt.Sprintf("LOAD DATA INPATH '%s' %sINTO TABLE %s%s",
		l.Path, overwrite, scopedName(l.Name, l.Database), partition), nil
}
