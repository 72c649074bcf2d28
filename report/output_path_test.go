package report

import (
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"pzg/config"
	"pzg/document"
	"pzg/state"
	"pzg/style"
)

func testEnv(t *testing.T) *state.LocalEnv {
	t.Helper()

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	return &state.LocalEnv{Cfg: cfg, Log: zap.NewNop()}
}

func testDoc() *document.Document {
	c := document.NewComposer(style.DefaultSet(), document.Metadata{
		StudentName: "Дубровских Н.Е.",
		Group:       "221-361",
		Topic:       "Разработка интеграционного решения",
		Year:        "2025",
	})
	return c.Document()
}

func TestBuildOutputPath_Default(t *testing.T) {
	env := testEnv(t)
	env.Cfg.Document.OutputNameTemplate = ""
	env.Cfg.Document.FileNameTransliterate = false

	got := buildOutputPath(testDoc(), "/tmp/out", env)
	want := filepath.Join("/tmp/out", "Пояснительная_записка.docx")
	if got != want {
		t.Errorf("buildOutputPath() = %q, want %q", got, want)
	}
}

func TestBuildOutputPath_Transliterated(t *testing.T) {
	env := testEnv(t)
	env.Cfg.Document.OutputNameTemplate = ""
	env.Cfg.Document.FileNameTransliterate = true

	got := filepath.Base(buildOutputPath(testDoc(), "/tmp/out", env))
	if !strings.HasSuffix(got, ".docx") {
		t.Fatalf("Output name = %q, want .docx extension", got)
	}
	for _, r := range got {
		if r > 127 {
			t.Errorf("Output name %q contains non-ASCII rune %q", got, r)
			break
		}
	}
}

func TestBuildOutputPath_Template(t *testing.T) {
	env := testEnv(t)
	env.Cfg.Document.OutputNameTemplate = "{{ .Year }}/note-{{ .Group }}"
	env.Cfg.Document.FileNameTransliterate = false

	got := buildOutputPath(testDoc(), "/tmp/out", env)
	want := filepath.Join("/tmp/out", "2025", "note-221-361.docx")
	if got != want {
		t.Errorf("buildOutputPath() = %q, want %q", got, want)
	}
}

func TestBuildOutputPath_BadTemplateFallsBack(t *testing.T) {
	env := testEnv(t)
	env.Cfg.Document.OutputNameTemplate = "{{ .NoSuchField"
	env.Cfg.Document.FileNameTransliterate = false

	got := buildOutputPath(testDoc(), "/tmp/out", env)
	want := filepath.Join("/tmp/out", "Пояснительная_записка.docx")
	if got != want {
		t.Errorf("buildOutputPath() = %q, want default %q", got, want)
	}
}

func TestExpandTemplate_Values(t *testing.T) {
	d := testDoc()

	got, err := expandTemplate(d, config.OutputNameTemplateFieldName, "{{ .Student }} {{ .Year }} {{ .Date }}")
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	want := "Дубровских Н.Е. 2025 " + d.CreatedAt.Format("2006-01-02")
	if got != want {
		t.Errorf("expandTemplate() = %q, want %q", got, want)
	}
}
