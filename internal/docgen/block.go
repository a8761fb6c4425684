// Package docgen assembles client and acte data into French legal documents
// and renders them as Word (.docx) files.
//
// The package is pure and stateless: callers validate a record, build the
// block sequence for the wanted document type, then render it. No state
// survives between invocations.
package docgen

// Heading levels of a document block. Rendering maps them to font sizes,
// the level itself is kept so assemblers never hardcode styling.
type HeadingLevel int

const (
	LevelBody HeadingLevel = iota
	LevelTitle
	LevelSection
	LevelSubSection
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Run sizes in half-points, matching the house document style.
const (
	sizeTitle      = 32 // 16pt
	sizeSection    = 28 // 14pt
	sizeSubSection = 24 // 12pt
	sizeBody       = 22 // 11pt
)

// Run is a styled fragment of text inside a block.
type Run struct {
	Text string
	Bold bool
	Size int
}

// Block is one paragraph of the assembled document.
//
// Before/After are vertical spacings in twentieths of a point, the unit
// Word uses internally.
type Block struct {
	Level  HeadingLevel
	Align  Alignment
	Before int
	After  int
	Runs   []Run
}

// Builder accumulates blocks in order. All assemblers share it so section
// headers, body text and signature lines look the same across document types.
type Builder struct {
	blocks []Block
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Title appends the centered main title of the document.
func (b *Builder) Title(text string) {
	b.blocks = append(b.blocks, Block{
		Level: LevelTitle,
		Align: AlignCenter,
		After: 400,
		Runs:  []Run{{Text: text, Bold: true, Size: sizeTitle}},
	})
}

// Section appends an all-caps section header.
func (b *Builder) Section(text string) {
	b.blocks = append(b.blocks, Block{
		Level:  LevelSection,
		Before: 400,
		After:  200,
		Runs:   []Run{{Text: text, Bold: true, Size: sizeSection}},
	})
}

// SubSection appends a resolution-style sub header.
func (b *Builder) SubSection(text string) {
	b.blocks = append(b.blocks, Block{
		Level:  LevelSubSection,
		Before: 200,
		After:  200,
		Runs:   []Run{{Text: text, Bold: true, Size: sizeSubSection}},
	})
}

// Text appends a plain body paragraph.
func (b *Builder) Text(text string) {
	b.blocks = append(b.blocks, Block{
		Runs: []Run{{Text: text, Size: sizeBody}},
	})
}

// Bold appends a body paragraph in bold, used for operative clauses
// ("DÉCIDE ...", "APPROUVE ...").
func (b *Builder) Bold(text string) {
	b.blocks = append(b.blocks, Block{
		After: 200,
		Runs:  []Run{{Text: text, Bold: true, Size: sizeBody}},
	})
}

// Spaced appends a body paragraph with explicit spacing.
func (b *Builder) Spaced(before, after int, text string, bold bool) {
	b.blocks = append(b.blocks, Block{
		Before: before,
		After:  after,
		Runs:   []Run{{Text: text, Bold: bold, Size: sizeBody}},
	})
}

// Signature appends a signature line preceded by whitespace for the pen.
func (b *Builder) Signature(text string) {
	b.blocks = append(b.blocks, Block{
		Before: 200,
		After:  400,
		Runs:   []Run{{Text: text, Size: sizeBody}},
	})
}

func (b *Builder) Blocks() []Block {
	return b.blocks
}
