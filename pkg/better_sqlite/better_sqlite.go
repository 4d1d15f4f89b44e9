// Package better_sqlite is a typed boundary over the SQLite engine provided by
// github.com/mattn/go-sqlite3.
//
// Features:
//   - One dedicated engine session per DB, including in-memory databases
//   - Prepared statements with named or raw (positional) rows
//   - Tagged parameter and column values (see package value)
//   - Every failure translated into *sqlerr.EngineError or *sqlerr.HostError
//
// Example usage:
//
//	db, err := better_sqlite.NewBuilder("app.db").
//		WithTimeout(2 * time.Second).
//		WithVerboseHook(better_sqlite.SlogHook(nil)).
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.Close()
//
//	if err := db.Exec("CREATE TABLE IF NOT EXISTS t(id INTEGER PRIMARY KEY, v TEXT)"); err != nil {
//		log.Fatal(err)
//	}
//
//	insert, err := db.Prepare("INSERT INTO t (v) VALUES (?)")
//	if err != nil {
//		log.Fatal(err)
//	}
//	info, err := insert.Run(value.Text("hello"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(info.LastInsertID)
package better_sqlite
