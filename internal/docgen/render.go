package docgen

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fumiama/go-docx"
)

// Render serializes an assembled block sequence into a .docx byte buffer.
//
// Errors at this stage are library faults, not data problems: they are
// wrapped with the support wording so callers can tell the two apart.
func Render(blocks []Block) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	for _, blk := range blocks {
		p := w.AddParagraph()
		switch blk.Align {
		case AlignCenter:
			p.Justification("center")
		case AlignRight:
			p.Justification("right")
		}

		for _, r := range blk.Runs {
			run := p.AddText(r.Text)
			run.Size(strconv.Itoa(r.Size))
			if r.Bold {
				run.Bold()
			}
		}

		// go-docx does not expose paragraph spacing; large gaps become an
		// empty paragraph so the printed layout keeps its breathing room.
		if blk.After >= 400 {
			w.AddParagraph()
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("erreur technique lors de la génération du document Word : %w. Veuillez réessayer ou contacter le support", err)
	}
	return buf.Bytes(), nil
}
