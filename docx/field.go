package docx

import "github.com/beevik/etree"

// The current-page field is the only live value in the document. A viewer
// recognizes it by the exact node sequence inside one run:
//
//	<w:fldChar w:fldCharType="begin"/>
//	<w:instrText xml:space="preserve">PAGE</w:instrText>
//	<w:fldChar w:fldCharType="end"/>
//
// The triplet must stay contiguous and in this order; splitting it across
// runs or interleaving other nodes breaks field recognition.

// BuildPageNumberField constructs the three field nodes, begin to end.
func BuildPageNumberField() []*etree.Element {
	begin := etree.NewElement("w:fldChar")
	begin.CreateAttr("w:fldCharType", "begin")

	instr := etree.NewElement("w:instrText")
	instr.CreateAttr("xml:space", "preserve")
	instr.SetText("PAGE")

	end := etree.NewElement("w:fldChar")
	end.CreateAttr("w:fldCharType", "end")

	return []*etree.Element{begin, instr, end}
}

// InjectPageNumberField splices the field triplet into the given run in
// place of literal text. Meant for header/footer runs only.
func InjectPageNumberField(run *etree.Element) {
	for _, node := range BuildPageNumberField() {
		run.AddChild(node)
	}
}
