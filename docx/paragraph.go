package docx

import (
	"strings"

	"github.com/beevik/etree"

	"pzg/document"
	"pzg/style"
)

// writeRunProps emits the run properties for the given record. The
// east-asian font always mirrors the latin one so mixed-script text
// renders with consistent glyphs.
func writeRunProps(run *etree.Element, rec style.Record) {
	rPr := run.CreateElement("w:rPr")

	fonts := rPr.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", rec.FontFamily)
	fonts.CreateAttr("w:hAnsi", rec.FontFamily)
	fonts.CreateAttr("w:eastAsia", rec.EastAsiaFamily)
	fonts.CreateAttr("w:cs", rec.FontFamily)

	if rec.Bold {
		rPr.CreateElement("w:b")
	}

	sz := rPr.CreateElement("w:sz")
	sz.CreateAttr("w:val", itoa(ptToHalfPoints(rec.FontSizePt)))
	szCs := rPr.CreateElement("w:szCs")
	szCs.CreateAttr("w:val", itoa(ptToHalfPoints(rec.FontSizePt)))
}

// writeRunText emits text nodes for a run, turning tab characters into
// proper tab nodes and newlines into line breaks.
func writeRunText(run *etree.Element, text string) {
	flush := func(part string) {
		if len(part) == 0 {
			return
		}
		t := run.CreateElement("w:t")
		if part != strings.TrimSpace(part) {
			t.CreateAttr("xml:space", "preserve")
		}
		t.SetText(part)
	}

	start := 0
	for i, r := range text {
		switch r {
		case '\t':
			flush(text[start:i])
			run.CreateElement("w:tab")
			start = i + 1
		case '\n':
			flush(text[start:i])
			run.CreateElement("w:br")
			start = i + 1
		}
	}
	flush(text[start:])
}

func writeParagraphProps(p *etree.Element, rec style.Record) {
	pPr := p.CreateElement("w:pPr")

	spacing := pPr.CreateElement("w:spacing")
	spacing.CreateAttr("w:before", itoa(ptToTwips(rec.SpaceBeforePt)))
	spacing.CreateAttr("w:after", itoa(ptToTwips(rec.SpaceAfterPt)))
	spacing.CreateAttr("w:line", itoa(lineSpacingTo240ths(rec.LineSpacing)))
	spacing.CreateAttr("w:lineRule", "auto")

	ind := pPr.CreateElement("w:ind")
	ind.CreateAttr("w:firstLine", itoa(cmToTwips(rec.FirstLineIndentCm)))

	jc := pPr.CreateElement("w:jc")
	jc.CreateAttr("w:val", rec.Alignment.String())
}

// writeParagraph renders one styled paragraph block.
func writeParagraph(parent *etree.Element, para *document.Paragraph) {
	p := parent.CreateElement("w:p")
	writeParagraphProps(p, para.Style)

	run := p.CreateElement("w:r")
	writeRunProps(run, para.Style)
	writeRunText(run, para.Text)
}

// writePageBreak renders an explicit page break paragraph.
func writePageBreak(parent *etree.Element) {
	p := parent.CreateElement("w:p")
	run := p.CreateElement("w:r")
	br := run.CreateElement("w:br")
	br.CreateAttr("w:type", "page")
}
