package docx

import (
	"github.com/beevik/etree"

	"pzg/document"
	"pzg/style"
)

var tableBorderEdges = []string{"top", "left", "bottom", "right", "insideH", "insideV"}

// writeTable renders a grid table: single-line borders on all edges, one
// bold header row, equal column widths across the text area.
func writeTable(parent *etree.Element, tbl *document.Table, geo document.SectionGeometry, set style.Set) {
	t := parent.CreateElement("w:tbl")

	tblPr := t.CreateElement("w:tblPr")
	tblW := tblPr.CreateElement("w:tblW")
	tblW.CreateAttr("w:w", "0")
	tblW.CreateAttr("w:type", "auto")
	borders := tblPr.CreateElement("w:tblBorders")
	for _, edge := range tableBorderEdges {
		b := borders.CreateElement("w:" + edge)
		b.CreateAttr("w:val", "single")
		b.CreateAttr("w:sz", "4")
		b.CreateAttr("w:space", "0")
		b.CreateAttr("w:color", "auto")
	}

	cols := len(tbl.Header)
	textWidth := cmToTwips(geo.PageWidthCm - geo.MarginLeftCm - geo.MarginRightCm)
	colWidth := 0
	if cols > 0 {
		colWidth = textWidth / cols
	}

	grid := t.CreateElement("w:tblGrid")
	for i := 0; i < cols; i++ {
		gc := grid.CreateElement("w:gridCol")
		gc.CreateAttr("w:w", itoa(colWidth))
	}

	writeTableRow(t, tbl.Header, colWidth, set, true)
	for _, row := range tbl.Rows {
		writeTableRow(t, row, colWidth, set, false)
	}
}

func writeTableRow(t *etree.Element, cells []string, colWidth int, set style.Set, header bool) {
	tr := t.CreateElement("w:tr")
	for _, text := range cells {
		tc := tr.CreateElement("w:tc")

		tcPr := tc.CreateElement("w:tcPr")
		tcW := tcPr.CreateElement("w:tcW")
		tcW.CreateAttr("w:w", itoa(colWidth))
		tcW.CreateAttr("w:type", "dxa")

		// cells keep default single spacing and left alignment
		rec := style.Record{
			FontFamily:     set.FontFamily,
			EastAsiaFamily: set.FontFamily,
			FontSizePt:     set.FontSizePt,
			Bold:           header,
			Alignment:      style.AlignLeft,
			LineSpacing:    1.0,
		}

		p := tc.CreateElement("w:p")
		writeParagraphProps(p, rec)
		run := p.CreateElement("w:r")
		writeRunProps(run, rec)
		writeRunText(run, text)
	}
}
