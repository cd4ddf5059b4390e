// Package assets embeds the offline word lists and the SQL migrations.
package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"strings"
)

//go:embed words/*.txt sql/*.sql
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded list for an ISO 639 code such as "en".
// A missing list yields an error matching fs.ErrNotExist.
func WordList(lang string) ([]string, error) {
	return readLines("words/" + lang + ".txt")
}

// Migrations returns the directory of *.sql migration files.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		panic(err) // unreachable: "sql" is embedded above
	}
	return sub
}
