package document

import (
	"errors"
	"strings"
	"testing"

	"pzg/style"
)

func newTestComposer() *Composer {
	return NewComposer(style.DefaultSet(), Metadata{Topic: "Тест", Year: "2025"})
}

func TestConfigureGeometry_LastWriteWins(t *testing.T) {
	c := newTestComposer()

	first := DefaultGeometry()
	first.MarginLeftCm = 5
	second := DefaultGeometry()
	second.MarginLeftCm = 2.5

	c.ConfigureGeometry(first)
	c.ConfigureGeometry(second)

	if got := c.Document().Geometry.MarginLeftCm; got != 2.5 {
		t.Errorf("MarginLeftCm = %f, want 2.5", got)
	}
}

func TestAppendHeading_Level1Uppercased(t *testing.T) {
	c := newTestComposer()
	c.AppendHeading(1, "Введение")

	blocks := c.Document().Blocks
	if len(blocks) != 1 || blocks[0].Kind != BlockParagraph {
		t.Fatalf("Blocks = %+v, want single paragraph", blocks)
	}
	p := blocks[0].Paragraph
	if p.Text != "ВВЕДЕНИЕ" {
		t.Errorf("Text = %q, want upper-cased", p.Text)
	}
	if p.Style.Alignment != style.AlignCenter || !p.Style.Bold {
		t.Errorf("Style = %+v, want centered bold", p.Style)
	}
}

func TestAppendHeading_Level2KeepsCase(t *testing.T) {
	c := newTestComposer()
	c.AppendHeading(2, "1.1 Описание бизнес-процесса")

	p := c.Document().Blocks[0].Paragraph
	if p.Text != "1.1 Описание бизнес-процесса" {
		t.Errorf("Text = %q, want unchanged", p.Text)
	}
	if p.Style.Alignment != style.AlignJustify {
		t.Errorf("Alignment = %v, want justify", p.Style.Alignment)
	}
	if p.Style.SpaceBeforePt != 12 || p.Style.SpaceAfterPt != 6 {
		t.Errorf("Spacing = %d/%d, want 12/6", p.Style.SpaceBeforePt, p.Style.SpaceAfterPt)
	}
}

func TestAppendListItem_Markers(t *testing.T) {
	c := newTestComposer()
	c.AppendListItem("первый;", 1)
	c.AppendListItem("маркер.", 0)

	blocks := c.Document().Blocks
	if got := blocks[0].Paragraph.Text; got != "1) первый;" {
		t.Errorf("Ordinal item text = %q", got)
	}
	if got := blocks[1].Paragraph.Text; got != "– маркер." {
		t.Errorf("Dash item text = %q", got)
	}
}

func TestAppendTOCEntry_SubsectionNesting(t *testing.T) {
	c := newTestComposer()
	c.AppendTOCEntry("ВВЕДЕНИЕ", "3")
	c.AppendTOCEntry("1 АНАЛИЗ ПРЕДМЕТНОЙ ОБЛАСТИ", "5")
	c.AppendTOCEntry("1.1 Описание бизнес-процесса", "5")

	blocks := c.Document().Blocks
	if got := blocks[0].Paragraph.Text; got != "ВВЕДЕНИЕ\t3" {
		t.Errorf("Top-level entry = %q", got)
	}
	if got := blocks[1].Paragraph.Text; strings.HasPrefix(got, "\t") {
		t.Errorf("Section entry %q should not be nested", got)
	}
	if got := blocks[2].Paragraph.Text; got != "\t1.1 Описание бизнес-процесса\t5" {
		t.Errorf("Subsection entry = %q, want leading tab", got)
	}
}

func TestAppendTable_ShapeValidation(t *testing.T) {
	c := newTestComposer()

	err := c.AppendTable([]string{"a", "b", "c"}, [][]string{
		{"1", "2", "3"},
		{"4", "5"},
	})
	if err == nil {
		t.Fatal("Expected error for short row")
	}
	if !errors.Is(err, ErrMalformedTableShape) {
		t.Errorf("Error = %v, want ErrMalformedTableShape", err)
	}
	if len(c.Document().Blocks) != 0 {
		t.Error("Malformed table must not be appended")
	}

	if err := c.AppendTable([]string{"a", "b"}, [][]string{{"1", "2"}}); err != nil {
		t.Fatalf("AppendTable() error = %v", err)
	}
	if len(c.Document().Blocks) != 1 || c.Document().Blocks[0].Kind != BlockTable {
		t.Errorf("Blocks = %+v, want single table", c.Document().Blocks)
	}
}

func TestAppendPageBreak(t *testing.T) {
	c := newTestComposer()
	c.AppendParagraph("текст", false, true)
	c.AppendPageBreak()

	blocks := c.Document().Blocks
	if len(blocks) != 2 {
		t.Fatalf("Blocks length = %d, want 2", len(blocks))
	}
	if blocks[1].Kind != BlockPageBreak {
		t.Errorf("Kind = %v, want page break", blocks[1].Kind)
	}
}

func TestDocument_IdentityFixedAtConstruction(t *testing.T) {
	c := newTestComposer()
	d := c.Document()

	id, created := d.ID, d.CreatedAt
	c.AppendParagraph("текст", false, true)
	c.AppendPageBreak()

	if d.ID != id || !d.CreatedAt.Equal(created) {
		t.Error("Document identity changed after append")
	}
	if len(id) == 0 {
		t.Error("Document ID is empty")
	}
}

func TestAppendOrderPreserved(t *testing.T) {
	c := newTestComposer()
	c.AppendHeading(1, "Раздел")
	c.AppendParagraph("один", false, true)
	c.AppendParagraph("два", false, true)

	blocks := c.Document().Blocks
	want := []string{"РАЗДЕЛ", "один", "два"}
	for i, text := range want {
		if blocks[i].Paragraph.Text != text {
			t.Errorf("Blocks[%d].Text = %q, want %q", i, blocks[i].Paragraph.Text, text)
		}
	}
}
