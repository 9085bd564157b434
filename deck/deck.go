package deck

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

//go:embed assets/starter.deck
var starterDeck string

var ErrEmptyDeck = errors.New("deck has no cards")

// MaxCopies caps the count of a single entry.
const MaxCopies = 99

// Deck is a parsed deck file, one entry per line:
//
//	# comment
//	2 x Sedative
//	1 x Cold Compress
type Deck struct {
	Entries []*Entry `parser:"EOL* @@*"`
}

type Entry struct {
	Pos lexer.Position

	Count int      `parser:"@Int (\"x\" | \"X\")"`
	Words []string `parser:"@Ident+ EOL*"`
}

// Name is the card name with its words joined by single spaces.
func (e *Entry) Name() string {
	return strings.Join(e.Words, " ")
}

// Labels expands the deck into one label per card, in file order.
func (d *Deck) Labels() []string {
	var labels []string
	for _, e := range d.Entries {
		for range e.Count {
			labels = append(labels, e.Name())
		}
	}
	return labels
}

// Size is the total number of cards.
func (d *Deck) Size() int {
	n := 0
	for _, e := range d.Entries {
		n += e.Count
	}
	return n
}

type Parser struct {
	parser *participle.Parser[Deck]
}

func NewParser() *Parser {
	parser := participle.MustBuild[Deck](
		participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
			{Name: "comment", Pattern: `#[^\n]*`},
			{Name: "whitespace", Pattern: `[ \t\r]+`},
			{Name: "EOL", Pattern: `\n`},
			{Name: "Int", Pattern: `\d+`},
			{Name: "Ident", Pattern: `[a-zA-Z][\w'-]*`},
		})),
	)
	return &Parser{parser}
}

// Parse reads a deck from text. The source name is used in error positions.
func (p *Parser) Parse(source, txt string) (*Deck, error) {
	d, err := p.parser.ParseString(source, txt)
	if err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}
	line := 0
	for _, e := range d.Entries {
		if e.Pos.Line == line {
			return nil, fmt.Errorf("%s: %q must start on its own line", e.Pos, e.Name())
		}
		line = e.Pos.Line
		if e.Count <= 0 {
			return nil, fmt.Errorf("%s: %q needs at least one copy", e.Pos, e.Name())
		}
		if e.Count > MaxCopies {
			return nil, fmt.Errorf("%s: %q has %d copies, at most %d allowed", e.Pos, e.Name(), e.Count, MaxCopies)
		}
	}
	if len(d.Entries) == 0 {
		return nil, ErrEmptyDeck
	}
	return d, nil
}

// Starter returns the deck built into the binary.
func (p *Parser) Starter() (*Deck, error) {
	return p.Parse("starter.deck", starterDeck)
}

// Load reads a deck file, falling back to the starter deck for an empty path.
func Load(path string) (*Deck, error) {
	p := NewParser()
	if path == "" {
		return p.Starter()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return p.Parse(path, string(data))
}
