package ddl

import "testing"

func TestDropTable(t *testing.T) {
	assertCompile(t, &DropTable{Name: "t", Database: "db", MustExist: true},
		"DROP TABLE db.t")
	assertCompile(t, &DropTable{Name: "t"},
		"DROP TABLE IF EXISTS t")
}

func TestDropView(t *testing.T) {
	assertCompile(t, &DropView{Name: "v", Database: "db", MustExist: true},
		"DROP VIEW db.v")
	assertCompile(t, &DropView{Name: "v"},
		"DROP VIEW IF EXISTS v")
}

func TestDropDatabase(t *testing.T) {
	assertCompile(t, &DropDatabase{Name: "db", MustExist: true},
		"DROP DATABASE db")
	assertCompile(t, &DropDatabase{Name: "db"},
		"DROP DATABASE IF EXISTS db")
}
