package ddl

import "fmt"

// compileDrop renders the DROP statement shared by the drop family. The
// objectType discriminator selects TABLE/VIEW/DATABASE/FUNCTION syntax;
// mustExist=false adds the IF EXISTS guard.
func compileDrop(objectType, name string, mustExist bool) string {
	ifExists := ""
	if !mustExist {
		ifExists = "IF EXISTS "
	}
	return fmt.Sprintf("DROP %s %s%s", objectType, ifExists, name)
}

// DropTable drops a table. MustExist=false emits IF EXISTS.
type DropTable struct {
	Name      string
	Database  string
	MustExist bool
}

func (d *DropTable) Compile() (string, error) {
	return compileDrop("TABLE", scopedName(d.Name, d.Database), d.MustExist), nil
}

// DropView drops a view.
type DropView struct {
	Name      string
	Database  string
	MustExist bool
}

func (d *DropView) Compile() (string, error) {
	return compileDrop("VIEW", scopedName(d.Name, d.Database), d.MustExist), nil
}

// DropDatabase drops a database.
type DropDatabase struct {
	Name      string
	MustExist bool
}

func (d *DropDatabase) Compile() (string, error) {
	return compileDrop("DATABASE", d.Name, d.MustExist), nil
}
