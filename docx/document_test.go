package docx

import (
	"strings"
	"testing"

	"github.com/beevik/etree"

	"pzg/document"
	"pzg/style"
)

func composeTestDocument(t *testing.T) *document.Document {
	t.Helper()

	c := document.NewComposer(style.DefaultSet(), document.Metadata{Topic: "Тест", Year: "2025"})
	c.AppendHeading(1, "Введение")
	c.AppendParagraph("Первый абзац основного текста.", false, true)
	return c.Document()
}

func findOne(t *testing.T, root *etree.Element, path string) *etree.Element {
	t.Helper()

	el := root.FindElement(path)
	if el == nil {
		t.Fatalf("Element %s not found", path)
	}
	return el
}

func TestBuildDocumentXML_HeadingAndParagraph(t *testing.T) {
	doc := buildDocumentXML(composeTestDocument(t))

	body := findOne(t, doc.Root(), "w:body")
	paragraphs := body.FindElements("w:p")
	if len(paragraphs) != 2 {
		t.Fatalf("Paragraph count = %d, want 2", len(paragraphs))
	}

	// heading: centered, bold, upper-cased, no indent
	h := paragraphs[0]
	if got := findOne(t, h, "w:pPr/w:jc").SelectAttrValue("w:val", ""); got != "center" {
		t.Errorf("Heading jc = %q, want center", got)
	}
	if got := findOne(t, h, "w:pPr/w:ind").SelectAttrValue("w:firstLine", ""); got != "0" {
		t.Errorf("Heading firstLine = %q, want 0", got)
	}
	if got := findOne(t, h, "w:pPr/w:spacing").SelectAttrValue("w:after", ""); got != "240" {
		t.Errorf("Heading space after = %q, want 240", got)
	}
	if h.FindElement("w:r/w:rPr/w:b") == nil {
		t.Error("Heading run must be bold")
	}
	if got := findOne(t, h, "w:r/w:t").Text(); got != "ВВЕДЕНИЕ" {
		t.Errorf("Heading text = %q", got)
	}

	// body paragraph: justified, indented, 1.5 spacing
	p := paragraphs[1]
	if got := findOne(t, p, "w:pPr/w:jc").SelectAttrValue("w:val", ""); got != "both" {
		t.Errorf("Body jc = %q, want both", got)
	}
	if got := findOne(t, p, "w:pPr/w:ind").SelectAttrValue("w:firstLine", ""); got != "709" {
		t.Errorf("Body firstLine = %q, want 709", got)
	}
	spacing := findOne(t, p, "w:pPr/w:spacing")
	if got := spacing.SelectAttrValue("w:line", ""); got != "360" {
		t.Errorf("Body line = %q, want 360", got)
	}
	if got := spacing.SelectAttrValue("w:lineRule", ""); got != "auto" {
		t.Errorf("Body lineRule = %q, want auto", got)
	}
	if p.FindElement("w:r/w:rPr/w:b") != nil {
		t.Error("Body run must not be bold")
	}

	// base typography on both runs
	for i, par := range paragraphs {
		fonts := findOne(t, par, "w:r/w:rPr/w:rFonts")
		if got := fonts.SelectAttrValue("w:ascii", ""); got != "Times New Roman" {
			t.Errorf("Paragraph %d ascii font = %q", i, got)
		}
		if got := fonts.SelectAttrValue("w:eastAsia", ""); got != "Times New Roman" {
			t.Errorf("Paragraph %d eastAsia font = %q", i, got)
		}
		if got := findOne(t, par, "w:r/w:rPr/w:sz").SelectAttrValue("w:val", ""); got != "28" {
			t.Errorf("Paragraph %d sz = %q, want 28", i, got)
		}
	}
}

func TestBuildDocumentXML_SectionGeometry(t *testing.T) {
	doc := buildDocumentXML(composeTestDocument(t))

	body := findOne(t, doc.Root(), "w:body")
	children := body.ChildElements()
	if children[len(children)-1].Tag != "sectPr" {
		t.Error("sectPr must be the last child of body")
	}

	pgSz := findOne(t, body, "w:sectPr/w:pgSz")
	if got := pgSz.SelectAttrValue("w:w", ""); got != "11906" {
		t.Errorf("Page width = %q, want 11906", got)
	}
	if got := pgSz.SelectAttrValue("w:h", ""); got != "16838" {
		t.Errorf("Page height = %q, want 16838", got)
	}

	pgMar := findOne(t, body, "w:sectPr/w:pgMar")
	margins := []struct{ attr, want string }{
		{"w:top", "1134"},
		{"w:right", "850"},
		{"w:bottom", "1134"},
		{"w:left", "1701"},
		{"w:header", "709"},
		{"w:footer", "709"},
	}
	for _, m := range margins {
		if got := pgMar.SelectAttrValue(m.attr, ""); got != m.want {
			t.Errorf("Margin %s = %q, want %q", m.attr, got, m.want)
		}
	}

	ref := findOne(t, body, "w:sectPr/w:footerReference")
	if got := ref.SelectAttrValue("r:id", ""); got != ridFooter {
		t.Errorf("Footer reference = %q, want %q", got, ridFooter)
	}
}

func TestBuildDocumentXML_PageBreak(t *testing.T) {
	c := document.NewComposer(style.DefaultSet(), document.Metadata{})
	c.AppendParagraph("до разрыва", false, true)
	c.AppendPageBreak()
	c.AppendParagraph("после разрыва", false, true)

	doc := buildDocumentXML(c.Document())
	br := findOne(t, doc.Root(), "w:body/w:p/w:r/w:br")
	if got := br.SelectAttrValue("w:type", ""); got != "page" {
		t.Errorf("Break type = %q, want page", got)
	}
}

func TestWriteTable_ShapeAndHeader(t *testing.T) {
	c := document.NewComposer(style.DefaultSet(), document.Metadata{})
	err := c.AppendTable(
		[]string{"Реализация", "ns/op", "B/op"},
		[][]string{
			{"MapCache", "220", "32"},
			{"SQLiteCache", "78000", "1024"},
		},
	)
	if err != nil {
		t.Fatalf("AppendTable() error = %v", err)
	}

	doc := buildDocumentXML(c.Document())
	tbl := findOne(t, doc.Root(), "w:body/w:tbl")

	if got := len(tbl.FindElements("w:tblGrid/w:gridCol")); got != 3 {
		t.Errorf("Grid column count = %d, want 3", got)
	}

	rows := tbl.FindElements("w:tr")
	if len(rows) != 3 {
		t.Fatalf("Row count = %d, want 3 (header + 2 data)", len(rows))
	}

	for i, tc := range rows[0].FindElements("w:tc") {
		if tc.FindElement("w:p/w:r/w:rPr/w:b") == nil {
			t.Errorf("Header cell %d must be bold", i)
		}
	}
	for i, tc := range rows[1].FindElements("w:tc") {
		if tc.FindElement("w:p/w:r/w:rPr/w:b") != nil {
			t.Errorf("Data cell %d must not be bold", i)
		}
	}

	if got := findOne(t, rows[1], "w:tc/w:p/w:r/w:t").Text(); got != "MapCache" {
		t.Errorf("First data cell = %q", got)
	}

	borders := tbl.FindElements("w:tblPr/w:tblBorders/*")
	if len(borders) != 6 {
		t.Errorf("Border edge count = %d, want 6", len(borders))
	}
	for _, b := range borders {
		if got := b.SelectAttrValue("w:val", ""); got != "single" {
			t.Errorf("Border %s val = %q, want single", b.FullTag(), got)
		}
	}
}

func TestWriteRunText_Tabs(t *testing.T) {
	run := etree.NewElement("w:r")
	writeRunText(run, "Студент:\t\tИванов")

	children := run.ChildElements()
	want := []string{"t", "tab", "tab", "t"}
	if len(children) != len(want) {
		t.Fatalf("Child count = %d, want %d", len(children), len(want))
	}
	for i, child := range children {
		if child.Tag != want[i] {
			t.Errorf("Child[%d] = %s, want %s", i, child.FullTag(), want[i])
		}
	}
}

func TestWriteRunText_Newlines(t *testing.T) {
	run := etree.NewElement("w:r")
	writeRunText(run, "line one\nline two")

	children := run.ChildElements()
	want := []string{"t", "br", "t"}
	if len(children) != len(want) {
		t.Fatalf("Child count = %d, want %d", len(children), len(want))
	}
	for i, child := range children {
		if child.Tag != want[i] {
			t.Errorf("Child[%d] = %s, want %s", i, child.FullTag(), want[i])
		}
	}
	if got := children[0].Text(); got != "line one" {
		t.Errorf("First segment = %q", got)
	}
	if got := children[2].Text(); got != "line two" {
		t.Errorf("Second segment = %q", got)
	}

	// no literal newlines may survive inside text nodes
	for _, child := range children {
		if strings.Contains(child.Text(), "\n") {
			t.Errorf("Text node %q still carries a newline", child.Text())
		}
	}
}

func TestWriteRunText_MixedTabsAndNewlines(t *testing.T) {
	run := etree.NewElement("w:r")
	writeRunText(run, "{\n  \"email\": \"user@example.com\"\n}")

	children := run.ChildElements()
	want := []string{"t", "br", "t", "br", "t"}
	if len(children) != len(want) {
		t.Fatalf("Child count = %d, want %d", len(children), len(want))
	}
	for i, child := range children {
		if child.Tag != want[i] {
			t.Errorf("Child[%d] = %s, want %s", i, child.FullTag(), want[i])
		}
	}
	// interior line keeps its indentation
	if got := children[2].Text(); got != "  \"email\": \"user@example.com\"" {
		t.Errorf("Interior line = %q", got)
	}
	if children[2].SelectAttrValue("xml:space", "") != "preserve" {
		t.Error("Indented line must carry xml:space=preserve")
	}
}
