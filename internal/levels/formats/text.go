package formats

import (
	"fmt"

	"github.com/vovakirdan/isopuzzle/internal/level"
)

// ParseText parses a plain level file. Plain files carry no header, so the
// ID and name both come from the caller (usually the file name).
func ParseText(data []byte, id string) (Level, error) {
	doc, dialect, err := level.ParseDialect(string(data))
	if err != nil {
		return Level{}, fmt.Errorf("level %q: %w", id, err)
	}
	return Level{ID: id, Name: id, Doc: doc, Dialect: dialect}, nil
}
