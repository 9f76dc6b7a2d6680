// apps/go-solver/assets/embed.go
//
// Embedded resources shipped with the binary:
//   - words.txt:      default dictionary, one word per line ('#' comments allowed).
//   - migrations/*.sql: sqlite schema, applied in lexical order by storage.Migrate.

package assets

import (
	"embed"
	"io"
	"io/fs"
)

//go:embed words.txt migrations/*.sql
var FS embed.FS

// Words opens the embedded default word list.
func Words() (io.ReadCloser, error) {
	return FS.Open("words.txt")
}

// Migrations returns the embedded migrations directory as its own root.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "migrations")
	if err != nil {
		// The directory is embedded at build time; Sub only fails on a bad path.
		panic(err)
	}
	return sub
}
