// Package document holds the append-only document model and its composer.
//
// The composer is the single producer API: the caller configures geometry
// once, appends blocks in reading order and hands the finished document to
// the serializer. Nothing is ever edited or removed after append and the
// composer is not safe for concurrent use.
package document

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"pzg/style"
)

// ErrMalformedTableShape is returned when a table data row does not match
// the header row column count.
var ErrMalformedTableShape = errors.New("table data row column count does not match header")

// Document is the root entity: ordered blocks plus one section geometry.
// ID and CreatedAt are fixed at construction so repeated serialization of
// the same document produces identical bytes.
type Document struct {
	ID        string
	CreatedAt time.Time
	Meta      Metadata
	Geometry  SectionGeometry
	Blocks    []Block
	Set       style.Set
}

// Composer builds a Document through append operations.
type Composer struct {
	doc *Document
}

// NewComposer creates a composer owning an empty document with default
// geometry and the given base typography.
func NewComposer(set style.Set, meta Metadata) *Composer {
	return &Composer{
		doc: &Document{
			ID:        uuid.NewString(),
			CreatedAt: time.Now().UTC().Truncate(time.Second),
			Meta:      meta,
			Geometry:  DefaultGeometry(),
			Set:       set,
		},
	}
}

// Document returns the composed document for serialization.
func (c *Composer) Document() *Document {
	return c.doc
}

// ConfigureGeometry sets section geometry, last write wins.
func (c *Composer) ConfigureGeometry(g SectionGeometry) {
	c.doc.Geometry = g
}

func (c *Composer) appendParagraph(text string, rec style.Record) {
	c.doc.Blocks = append(c.doc.Blocks, Block{
		Kind:      BlockParagraph,
		Paragraph: &Paragraph{Text: text, Style: rec},
	})
}

// AppendHeading appends a section heading. Level 1 headings are centered
// and upper-cased, any other level renders as a justified subheading.
func (c *Composer) AppendHeading(level int, text string) {
	if level == 1 {
		c.appendParagraph(style.UpperTitle(text), style.For(style.KindHeading1, style.Flags{}, c.doc.Set))
		return
	}
	c.appendParagraph(text, style.For(style.KindHeading2, style.Flags{}, c.doc.Set))
}

// AppendParagraph appends a body paragraph. Empty text produces an empty
// styled paragraph (used for vertical spacing on the title page).
func (c *Composer) AppendParagraph(text string, bold, indented bool) {
	c.appendParagraph(text, style.For(style.KindBody, style.Flags{Bold: bold, Indented: indented}, c.doc.Set))
}

// AppendCentered appends a centered body paragraph without indentation.
func (c *Composer) AppendCentered(text string, bold bool) {
	c.appendParagraph(text, style.For(style.KindBody, style.Flags{Bold: bold, Centered: true}, c.doc.Set))
}

// AppendListItem appends a list entry. Ordinal > 0 renders "n) ", anything
// else renders the dash marker.
func (c *Composer) AppendListItem(text string, ordinal int) {
	c.appendParagraph(style.ListPrefix(ordinal)+text, style.For(style.KindListItem, style.Flags{}, c.doc.Set))
}

// subsection prefix like "1.1 " at the start of a TOC title
var tocSubsectionRe = regexp.MustCompile(`^\d+\.`)

// AppendTOCEntry appends one table-of-contents line: title, tab, literal
// page number. Titles with a numeric subsection prefix are nested under
// their parent heading with a leading tab.
func (c *Composer) AppendTOCEntry(title, page string) {
	text := title
	if tocSubsectionRe.MatchString(title) {
		text = "\t" + title
	}
	c.appendParagraph(text+"\t"+page, style.For(style.KindTOCEntry, style.Flags{}, c.doc.Set))
}

// AppendReference appends one numbered bibliography entry.
func (c *Composer) AppendReference(num int, text string) {
	c.appendParagraph(fmt.Sprintf("%d. %s", num, text), style.For(style.KindReference, style.Flags{}, c.doc.Set))
}

// AppendPageBreak appends an explicit page break.
func (c *Composer) AppendPageBreak() {
	c.doc.Blocks = append(c.doc.Blocks, Block{Kind: BlockPageBreak})
}

// AppendTable appends a table with a bold header row. Every data row must
// have exactly as many cells as the header.
func (c *Composer) AppendTable(header []string, rows [][]string) error {
	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("row %d has %d columns, header has %d: %w", i, len(row), len(header), ErrMalformedTableShape)
		}
	}
	c.doc.Blocks = append(c.doc.Blocks, Block{
		Kind:  BlockTable,
		Table: &Table{Header: header, Rows: rows},
	})
	return nil
}
