// apps/go-solver/assets/embed.go
//
// Embedded default word lists, used when no word list files are configured.
// Parsing (comments, case, length checks) lives in the words package.

package assets

import (
	"embed"
	"io"
)

const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// Open returns a reader over one of the embedded lists.
func Open(name string) (io.ReadCloser, error) {
	return FS.Open(name)
}
