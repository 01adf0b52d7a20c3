package level

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/isopuzzle/internal/core"
)

// ParseError codes.
const (
	ErrCodeTooWide = "TOO_WIDE"
	ErrCodeTooTall = "TOO_TALL"
	ErrCodeEmpty   = "EMPTY"
)

// ParseError reports a level text that cannot be loaded at all.
// Line is the 1-based source line, or 0 when the error is not tied to one.
type ParseError struct {
	Code    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s", e.Code, e.Line, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Dialect identifies one of the two text encodings.
type Dialect uint8

const (
	DialectCompact Dialect = iota
	DialectLegacy
)

// String returns the dialect name.
func (d Dialect) String() string {
	if d == DialectLegacy {
		return "legacy"
	}
	return "compact"
}

// sourceLine is a retained input line with its position in the original text.
type sourceLine struct {
	num  int
	text string
}

// Parse decodes level text in either dialect into a new Document.
func Parse(text string) (*Document, error) {
	doc, _, err := ParseDialect(text)
	return doc, err
}

// ParseDialect is Parse that also reports which dialect was detected.
func ParseDialect(text string) (*Document, Dialect, error) {
	lines := preprocess(text)
	if len(lines) == 0 {
		return nil, DialectCompact, &ParseError{Code: ErrCodeEmpty, Message: "level has no rows"}
	}
	if len(lines) > MaxSize {
		return nil, DialectCompact, &ParseError{
			Code:    ErrCodeTooTall,
			Line:    lines[MaxSize].num,
			Message: fmt.Sprintf("level has %d rows, max %d", len(lines), MaxSize),
		}
	}

	dialect := detectDialect(lines)
	rows := make([][]string, len(lines))
	width := 0
	for i, ln := range lines {
		if dialect == DialectLegacy {
			rows[i] = strings.Fields(ln.text)
		} else {
			rows[i] = tokenizeCompact(ln.text)
		}
		if len(rows[i]) > MaxSize {
			return nil, dialect, &ParseError{
				Code:    ErrCodeTooWide,
				Line:    ln.num,
				Message: fmt.Sprintf("row has %d cells, max %d", len(rows[i]), MaxSize),
			}
		}
		width = max(width, len(rows[i]))
	}

	doc := New(width, len(rows))
	anyBridgeOn := false
	for y, row := range rows {
		for x, tok := range row {
			c := core.C(x, y)
			if dialect == DialectLegacy {
				applyLegacy(doc, c, tok)
			} else if applyCompact(doc, c, tok) {
				anyBridgeOn = true
			}
		}
	}
	doc.SetBridgeOn(anyBridgeOn)
	return doc, dialect, nil
}

func preprocess(text string) []sourceLine {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var out []sourceLine
	for i, l := range raw {
		l = strings.TrimRight(l, " \t\r")
		if l == "" || strings.HasPrefix(l, ";") || strings.HasPrefix(l, "//") {
			continue
		}
		out = append(out, sourceLine{num: i + 1, text: l})
	}
	return out
}

// detectDialect picks legacy when a row contains a space and the rows read as
// space-separated two-character codes. A compact row with interior Void cells
// also contains spaces, so the fields are checked before committing.
func detectDialect(lines []sourceLine) Dialect {
	spaced := false
	for _, ln := range lines {
		if strings.Contains(ln.text, " ") {
			spaced = true
			break
		}
	}
	if !spaced {
		return DialectCompact
	}

	known := false
	for _, ln := range lines {
		for _, f := range strings.Fields(ln.text) {
			if len(f) > 2 {
				return DialectCompact
			}
			if _, ok := legacyCodes[f]; ok {
				known = true
			} else if len(f) == 2 && isLegacyDirCode(f) {
				known = true
			}
		}
	}
	if !known {
		return DialectCompact
	}
	return DialectLegacy
}

// tokenizeCompact splits a compact row into cell tokens. An id-bearing
// prefix followed by digits forms one token.
func tokenizeCompact(line string) []string {
	var tokens []string
	for i := 0; i < len(line); {
		ch := line[i]
		j := i + 1
		if strings.IndexByte(idPrefixes, ch) >= 0 {
			for j < len(line) && isDigit(line[j]) {
				j++
			}
		}
		tokens = append(tokens, line[i:j])
		i = j
	}
	return tokens
}

const idPrefixes = "LDdSTUVW"

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

var wallDigitDirs = map[byte]core.Dir{
	'7': core.North,
	'8': core.South,
	'9': core.East,
	'0': core.West,
}

var closedDoorDirs = map[byte]core.Dir{
	'D': core.South,
	'1': core.North,
	'2': core.South,
	'3': core.East,
	'4': core.West,
}

var openDoorDirs = map[byte]core.Dir{
	'd': core.South,
	'5': core.North,
	'6': core.South,
	'!': core.East,
	'@': core.West,
}

// switchDirs maps directed switch tokens; 'S' and 'L' are undirected.
var switchDirs = map[byte]core.Dir{
	'T': core.North,
	'U': core.South,
	'V': core.East,
	'W': core.West,
}

// applyCompact writes one compact token at c and reports whether it was an
// "on" bridge token.
func applyCompact(doc *Document, c core.Coord, tok string) bool {
	head, id := tok[0], tok[1:]

	if len(tok) == 1 {
		switch head {
		case ' ':
			return false
		case '.':
			doc.SetCell(c, Floor)
			return false
		case '#':
			doc.SetCell(c, LegacyWall)
			return false
		case 'B':
			doc.SetCell(c, Bridge)
			return true
		case 'b':
			doc.SetCell(c, Bridge)
			return false
		case 'K':
			doc.SetCell(c, Floor)
			doc.AddItem(Item{Pos: c, Kind: ItemKey})
			return false
		case 'P':
			doc.SetCell(c, Floor)
			doc.SetPlayerStart(c)
			return false
		}
		if dir, ok := wallDigitDirs[head]; ok {
			doc.SetCell(c, Floor)
			doc.SetWallObject(c, WallObject{Type: Wall, Dir: dir})
			return false
		}
	}

	if dir, ok := closedDoorDirs[head]; ok && (len(tok) == 1 || head == 'D') {
		doc.SetCell(c, Floor)
		doc.AddDoor(Door{Pos: c, ID: id, Dir: dir})
		return false
	}
	if dir, ok := openDoorDirs[head]; ok && (len(tok) == 1 || head == 'd') {
		doc.SetCell(c, Floor)
		doc.AddDoor(Door{Pos: c, ID: id, Open: true, Dir: dir})
		return false
	}
	if head == 'S' || head == 'L' {
		doc.SetCell(c, Floor)
		doc.AddSwitch(Switch{Pos: c, ID: id})
		return false
	}
	if dir, ok := switchDirs[head]; ok {
		doc.SetCell(c, Floor)
		doc.AddSwitch(Switch{Pos: c, ID: id, Facing: dir, Directed: true})
		return false
	}

	log.Warn("unknown level token, using void", "token", tok, "x", c.X, "y", c.Y)
	return false
}

// legacyCodes holds the fixed two-character legacy tokens.
var legacyCodes = map[string]func(doc *Document, c core.Coord){
	"FL": func(doc *Document, c core.Coord) { doc.SetCell(c, Floor) },
	"VO": func(doc *Document, c core.Coord) { doc.SetCell(c, Void) },
	"BR": func(doc *Document, c core.Coord) { doc.SetCell(c, Bridge) },
	"LV": func(doc *Document, c core.Coord) {
		doc.SetCell(c, Floor)
		doc.AddSwitch(Switch{Pos: c})
	},
	"KY": func(doc *Document, c core.Coord) {
		doc.SetCell(c, Floor)
		doc.AddItem(Item{Pos: c, Kind: ItemKey})
	},
	"PL": func(doc *Document, c core.Coord) {
		doc.SetCell(c, Floor)
		doc.SetPlayerStart(c)
	},
}

var legacyWallTypes = map[byte]WallType{
	'W': Wall,
	'H': HalfWall,
	'V': Window,
	'R': Doorway,
}

func isLegacyDirCode(code string) bool {
	if _, ok := core.ParseDir(strings.ToLower(code[1:])); !ok {
		return false
	}
	return strings.IndexByte("FWHVCOR", code[0]) >= 0
}

func applyLegacy(doc *Document, c core.Coord, tok string) {
	if fn, ok := legacyCodes[tok]; ok {
		fn(doc, c)
		return
	}

	if len(tok) == 2 && isLegacyDirCode(tok) {
		dir, _ := core.ParseDir(strings.ToLower(tok[1:]))
		doc.SetCell(c, Floor)
		switch tok[0] {
		case 'F':
			// Floor facing is cosmetic only.
		case 'C':
			doc.AddDoor(Door{Pos: c, Dir: dir})
		case 'O':
			doc.AddDoor(Door{Pos: c, Open: true, Dir: dir})
		default:
			doc.SetWallObject(c, WallObject{Type: legacyWallTypes[tok[0]], Dir: dir})
		}
		return
	}

	switch tok {
	case ".":
		doc.SetCell(c, Floor)
	case "#":
		doc.SetCell(c, LegacyWall)
	default:
		log.Warn("unknown legacy level token, using void", "token", tok, "x", c.X, "y", c.Y)
	}
}

// Serialize encodes a document in the compact dialect.
// Half walls and windows are written as plain walls and doorways as floor,
// since the compact dialect has no tokens for them.
func Serialize(doc *Document) string {
	var b strings.Builder
	start, hasStart := doc.PlayerStart()
	for y := 0; y < doc.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < doc.Width(); x++ {
			c := core.C(x, y)
			if tok, ok := propToken(doc, c); ok {
				b.WriteString(tok)
				continue
			}
			if hasStart && start == c {
				b.WriteByte('P')
				continue
			}
			b.WriteString(cellToken(doc, c))
		}
	}
	return b.String()
}

func propToken(doc *Document, c core.Coord) (string, bool) {
	if s, ok := doc.SwitchAt(c); ok {
		head := "S"
		if s.Directed {
			head = switchToken[s.Facing]
		}
		return head + s.ID, true
	}
	if d, ok := doc.DoorAt(c); ok {
		if d.Linked() {
			if d.Open {
				return "d" + d.ID, true
			}
			return "D" + d.ID, true
		}
		if d.Open {
			return openDoorToken[d.Dir], true
		}
		return closedDoorToken[d.Dir], true
	}
	if it, ok := doc.ItemAt(c); ok {
		if it.Kind != ItemKey {
			log.Warn("item kind has no level token, writing key", "kind", it.Kind, "x", c.X, "y", c.Y)
		}
		return "K", true
	}
	return "", false
}

var (
	switchToken     = map[core.Dir]string{core.North: "T", core.South: "U", core.East: "V", core.West: "W"}
	closedDoorToken = map[core.Dir]string{core.North: "1", core.South: "D", core.East: "3", core.West: "4"}
	openDoorToken   = map[core.Dir]string{core.North: "5", core.South: "d", core.East: "!", core.West: "@"}
	wallToken       = map[core.Dir]string{core.North: "7", core.South: "8", core.East: "9", core.West: "0"}
)

func cellToken(doc *Document, c core.Coord) string {
	if w, ok := doc.WallObjectAt(c); ok {
		switch w.Type {
		case Wall:
			return wallToken[w.Dir]
		case HalfWall, Window:
			log.Warn("wall type has no compact token, writing wall", "type", w.Type, "x", c.X, "y", c.Y)
			return wallToken[w.Dir]
		default:
			log.Warn("wall type has no compact token, writing floor", "type", w.Type, "x", c.X, "y", c.Y)
			return "."
		}
	}
	switch doc.CellAt(c) {
	case Floor:
		return "."
	case LegacyWall:
		return "#"
	case Bridge:
		if doc.BridgeOn() {
			return "B"
		}
		return "b"
	default:
		return " "
	}
}
