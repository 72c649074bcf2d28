package report

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"pzg/config"
	"pzg/document"
)

// Values holds variables we make available for template expansion.
type Values struct {
	Context    string
	Topic      string
	Student    string
	Group      string
	Teacher    string
	Year       string
	Date       string
	DocumentID string
}

func expandTemplate(d *document.Document, name config.TemplateFieldName, field string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Topic:      d.Meta.Topic,
		Student:    d.Meta.StudentName,
		Group:      d.Meta.Group,
		Teacher:    d.Meta.TeacherName,
		Year:       d.Meta.Year,
		Date:       d.CreatedAt.Format("2006-01-02"),
		DocumentID: d.ID,
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
