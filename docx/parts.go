package docx

import (
	"time"

	"github.com/beevik/etree"

	"pzg/document"
	"pzg/misc"
	"pzg/style"
)

const (
	nsMain          = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"

	relOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	relStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relFooter         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
)

// relationship IDs inside word/_rels/document.xml.rels
const (
	ridStyles = "rId1"
	ridFooter = "rId2"
)

func newPartDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return doc
}

func buildContentTypes() *etree.Document {
	doc := newPartDocument()

	types := doc.CreateElement("Types")
	types.CreateAttr("xmlns", nsContentTypes)

	def := types.CreateElement("Default")
	def.CreateAttr("Extension", "rels")
	def.CreateAttr("ContentType", "application/vnd.openxmlformats-package.relationships+xml")

	def = types.CreateElement("Default")
	def.CreateAttr("Extension", "xml")
	def.CreateAttr("ContentType", "application/xml")

	overrides := []struct{ part, contentType string }{
		{"/word/document.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"},
		{"/word/styles.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"},
		{"/word/footer1.xml", "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"},
		{"/docProps/core.xml", "application/vnd.openxmlformats-package.core-properties+xml"},
		{"/docProps/app.xml", "application/vnd.openxmlformats-officedocument.extended-properties+xml"},
	}
	for _, o := range overrides {
		ov := types.CreateElement("Override")
		ov.CreateAttr("PartName", o.part)
		ov.CreateAttr("ContentType", o.contentType)
	}
	return doc
}

func addRelationship(parent *etree.Element, id, relType, target string) {
	rel := parent.CreateElement("Relationship")
	rel.CreateAttr("Id", id)
	rel.CreateAttr("Type", relType)
	rel.CreateAttr("Target", target)
}

func buildRootRels() *etree.Document {
	doc := newPartDocument()

	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsPackageRels)
	addRelationship(rels, "rId1", relOfficeDocument, "word/document.xml")
	addRelationship(rels, "rId2", relCoreProps, "docProps/core.xml")
	addRelationship(rels, "rId3", relExtendedProps, "docProps/app.xml")
	return doc
}

func buildDocumentRels() *etree.Document {
	doc := newPartDocument()

	rels := doc.CreateElement("Relationships")
	rels.CreateAttr("xmlns", nsPackageRels)
	addRelationship(rels, ridStyles, relStyles, "styles.xml")
	addRelationship(rels, ridFooter, relFooter, "footer1.xml")
	return doc
}

func buildCoreProps(d *document.Document) *etree.Document {
	doc := newPartDocument()

	cp := doc.CreateElement("cp:coreProperties")
	cp.CreateAttr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties")
	cp.CreateAttr("xmlns:dc", "http://purl.org/dc/elements/1.1/")
	cp.CreateAttr("xmlns:dcterms", "http://purl.org/dc/terms/")
	cp.CreateAttr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance")

	cp.CreateElement("dc:title").SetText(d.Meta.Topic)
	creator := d.Meta.StudentFullName
	if len(creator) == 0 {
		creator = d.Meta.StudentName
	}
	cp.CreateElement("dc:creator").SetText(creator)
	cp.CreateElement("dc:identifier").SetText(d.ID)
	cp.CreateElement("cp:revision").SetText("1")

	stamp := d.CreatedAt.Format(time.RFC3339)
	created := cp.CreateElement("dcterms:created")
	created.CreateAttr("xsi:type", "dcterms:W3CDTF")
	created.SetText(stamp)
	modified := cp.CreateElement("dcterms:modified")
	modified.CreateAttr("xsi:type", "dcterms:W3CDTF")
	modified.SetText(stamp)
	return doc
}

func buildAppProps() *etree.Document {
	doc := newPartDocument()

	props := doc.CreateElement("Properties")
	props.CreateAttr("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties")
	props.CreateElement("Application").SetText(misc.GetAppName())
	props.CreateElement("AppVersion").SetText("1.0000")
	return doc
}

// buildStyles emits a minimal stylesheet: document defaults carrying the
// base typography so even unstyled runs render per requirements.
func buildStyles(set style.Set) *etree.Document {
	doc := newPartDocument()

	styles := doc.CreateElement("w:styles")
	styles.CreateAttr("xmlns:w", nsMain)

	docDefaults := styles.CreateElement("w:docDefaults")
	rPrDefault := docDefaults.CreateElement("w:rPrDefault")
	rPr := rPrDefault.CreateElement("w:rPr")
	fonts := rPr.CreateElement("w:rFonts")
	fonts.CreateAttr("w:ascii", set.FontFamily)
	fonts.CreateAttr("w:hAnsi", set.FontFamily)
	fonts.CreateAttr("w:eastAsia", set.FontFamily)
	fonts.CreateAttr("w:cs", set.FontFamily)
	sz := rPr.CreateElement("w:sz")
	sz.CreateAttr("w:val", itoa(ptToHalfPoints(set.FontSizePt)))
	szCs := rPr.CreateElement("w:szCs")
	szCs.CreateAttr("w:val", itoa(ptToHalfPoints(set.FontSizePt)))
	docDefaults.CreateElement("w:pPrDefault")

	normal := styles.CreateElement("w:style")
	normal.CreateAttr("w:type", "paragraph")
	normal.CreateAttr("w:default", "1")
	normal.CreateAttr("w:styleId", "Normal")
	name := normal.CreateElement("w:name")
	name.CreateAttr("w:val", "Normal")
	return doc
}

// buildFooter emits the footer part: one centered paragraph whose run
// carries the live page-number field.
func buildFooter(set style.Set) *etree.Document {
	doc := newPartDocument()

	ftr := doc.CreateElement("w:ftr")
	ftr.CreateAttr("xmlns:w", nsMain)

	p := ftr.CreateElement("w:p")
	pPr := p.CreateElement("w:pPr")
	jc := pPr.CreateElement("w:jc")
	jc.CreateAttr("w:val", "center")

	run := p.CreateElement("w:r")
	writeRunProps(run, style.Record{
		FontFamily:     set.FontFamily,
		EastAsiaFamily: set.FontFamily,
		FontSizePt:     set.FontSizePt,
	})
	InjectPageNumberField(run)
	return doc
}
