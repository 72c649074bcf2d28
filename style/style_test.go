package style

import "testing"

func TestFor_Deterministic(t *testing.T) {
	set := DefaultSet()

	for kind := KindHeading1; kind <= KindReference; kind++ {
		a := For(kind, Flags{Bold: true, Indented: true}, set)
		b := For(kind, Flags{Bold: true, Indented: true}, set)
		if a != b {
			t.Errorf("For(%v) not deterministic: %+v != %+v", kind, a, b)
		}
	}
}

func TestFor_Heading1(t *testing.T) {
	r := For(KindHeading1, Flags{}, DefaultSet())

	if r.Alignment != AlignCenter {
		t.Errorf("Alignment = %v, want center", r.Alignment)
	}
	if !r.Bold {
		t.Error("Expected heading 1 to be bold")
	}
	if r.SpaceBeforePt != 0 || r.SpaceAfterPt != 12 {
		t.Errorf("Spacing = %d/%d, want 0/12", r.SpaceBeforePt, r.SpaceAfterPt)
	}
	if r.FirstLineIndentCm != 0 {
		t.Errorf("FirstLineIndentCm = %f, want 0", r.FirstLineIndentCm)
	}
}

func TestFor_Heading2(t *testing.T) {
	r := For(KindHeading2, Flags{}, DefaultSet())

	if r.Alignment != AlignJustify {
		t.Errorf("Alignment = %v, want justify", r.Alignment)
	}
	if !r.Bold {
		t.Error("Expected heading 2 to be bold")
	}
	if r.SpaceBeforePt != 12 || r.SpaceAfterPt != 6 {
		t.Errorf("Spacing = %d/%d, want 12/6", r.SpaceBeforePt, r.SpaceAfterPt)
	}
	if r.FirstLineIndentCm != 1.25 {
		t.Errorf("FirstLineIndentCm = %f, want 1.25", r.FirstLineIndentCm)
	}
}

func TestFor_BodyFlags(t *testing.T) {
	set := DefaultSet()

	r := For(KindBody, Flags{}, set)
	if r.Bold || r.FirstLineIndentCm != 0 || r.Alignment != AlignJustify {
		t.Errorf("Plain body record = %+v", r)
	}

	r = For(KindBody, Flags{Bold: true, Indented: true}, set)
	if !r.Bold {
		t.Error("Expected bold body")
	}
	if r.FirstLineIndentCm != set.FirstLineIndentCm {
		t.Errorf("FirstLineIndentCm = %f, want %f", r.FirstLineIndentCm, set.FirstLineIndentCm)
	}

	r = For(KindBody, Flags{Centered: true}, set)
	if r.Alignment != AlignCenter {
		t.Errorf("Alignment = %v, want center", r.Alignment)
	}
}

func TestFor_BaseTypography(t *testing.T) {
	set := DefaultSet()

	for kind := KindHeading1; kind <= KindReference; kind++ {
		r := For(kind, Flags{}, set)
		if r.FontFamily != "Times New Roman" || r.EastAsiaFamily != "Times New Roman" {
			t.Errorf("For(%v) fonts = %q/%q", kind, r.FontFamily, r.EastAsiaFamily)
		}
		if r.FontSizePt != 14 {
			t.Errorf("For(%v) FontSizePt = %d, want 14", kind, r.FontSizePt)
		}
		if r.LineSpacing != 1.5 {
			t.Errorf("For(%v) LineSpacing = %f, want 1.5", kind, r.LineSpacing)
		}
	}
}

func TestFor_NoIndentKinds(t *testing.T) {
	set := DefaultSet()

	for _, kind := range []Kind{KindTOCEntry, KindReference} {
		r := For(kind, Flags{}, set)
		if r.FirstLineIndentCm != 0 {
			t.Errorf("For(%v) FirstLineIndentCm = %f, want 0", kind, r.FirstLineIndentCm)
		}
		if r.Bold {
			t.Errorf("For(%v) unexpected bold", kind)
		}
	}
}

func TestUpperTitle(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Введение", "ВВЕДЕНИЕ"},
		{"1 Анализ предметной области", "1 АНАЛИЗ ПРЕДМЕТНОЙ ОБЛАСТИ"},
		{"mixed Текст abc", "MIXED ТЕКСТ ABC"},
	}
	for _, c := range cases {
		if got := UpperTitle(c.in); got != c.want {
			t.Errorf("UpperTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestListPrefix(t *testing.T) {
	if got := ListPrefix(3); got != "3) " {
		t.Errorf("ListPrefix(3) = %q", got)
	}
	if got := ListPrefix(0); got != "– " {
		t.Errorf("ListPrefix(0) = %q", got)
	}
	if got := ListPrefix(-1); got != "– " {
		t.Errorf("ListPrefix(-1) = %q", got)
	}
}

func TestAlignmentString(t *testing.T) {
	if AlignLeft.String() != "left" || AlignCenter.String() != "center" || AlignJustify.String() != "both" {
		t.Error("Alignment.String() does not match WordprocessingML jc values")
	}
}
