package docx

import (
	"github.com/beevik/etree"

	"pzg/document"
)

// buildDocumentXML renders the main document part: every block in append
// order followed by the single section definition.
func buildDocumentXML(d *document.Document) *etree.Document {
	doc := newPartDocument()

	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", nsMain)
	root.CreateAttr("xmlns:r", nsRelationships)

	body := root.CreateElement("w:body")
	for i := range d.Blocks {
		block := &d.Blocks[i]
		switch block.Kind {
		case document.BlockParagraph:
			writeParagraph(body, block.Paragraph)
		case document.BlockPageBreak:
			writePageBreak(body)
		case document.BlockTable:
			writeTable(body, block.Table, d.Geometry, d.Set)
		}
	}
	writeSectionProps(body, d.Geometry)
	return doc
}

// writeSectionProps emits page size, margins and the footer reference. The
// section definition must be the last child of the body.
func writeSectionProps(body *etree.Element, geo document.SectionGeometry) {
	sectPr := body.CreateElement("w:sectPr")

	footerRef := sectPr.CreateElement("w:footerReference")
	footerRef.CreateAttr("w:type", "default")
	footerRef.CreateAttr("r:id", ridFooter)

	pgSz := sectPr.CreateElement("w:pgSz")
	pgSz.CreateAttr("w:w", itoa(cmToTwips(geo.PageWidthCm)))
	pgSz.CreateAttr("w:h", itoa(cmToTwips(geo.PageHeightCm)))

	pgMar := sectPr.CreateElement("w:pgMar")
	pgMar.CreateAttr("w:top", itoa(cmToTwips(geo.MarginTopCm)))
	pgMar.CreateAttr("w:right", itoa(cmToTwips(geo.MarginRightCm)))
	pgMar.CreateAttr("w:bottom", itoa(cmToTwips(geo.MarginBottomCm)))
	pgMar.CreateAttr("w:left", itoa(cmToTwips(geo.MarginLeftCm)))
	pgMar.CreateAttr("w:header", itoa(cmToTwips(geo.HeaderDistanceCm)))
	pgMar.CreateAttr("w:footer", itoa(cmToTwips(geo.FooterDistanceCm)))
	pgMar.CreateAttr("w:gutter", "0")
}
