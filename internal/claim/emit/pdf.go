package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/mrsinham/claimforge/internal/claim"
	"github.com/mrsinham/claimforge/internal/claim/fields"
)

// fillForm is the pdfcpu form-fill document.
type fillForm struct {
	Forms []fillEntry `json:"forms"`
}

type fillEntry struct {
	TextFields   []textField  `json:"textfield,omitempty"`
	RadioButtons []radioGroup `json:"radiobuttongroup,omitempty"`
}

type textField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Locked bool   `json:"locked"`
}

type radioGroup struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Locked bool   `json:"locked"`
}

// FillTemplate fills the claim template PDF with a form's field mapping and
// writes the result under dir. Text fields and radio groups route by the
// field catalog's kind.
func FillTemplate(templatePath, dir string, form claim.GeneratedForm) error {
	fill, err := buildFillForm(form.Mapping)
	if err != nil {
		return err
	}
	fillJSON, err := json.Marshal(fill)
	if err != nil {
		return fmt.Errorf("marshal fill form: %w", err)
	}

	template, err := os.Open(templatePath)
	if err != nil {
		return fmt.Errorf("open template: %w", err)
	}
	defer func() { _ = template.Close() }()

	outPath := filepath.Join(dir, PDFFilename(form.Index))
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create filled form: %w", err)
	}
	defer func() { _ = out.Close() }()

	conf := model.NewDefaultConfiguration()
	if err := api.FillForm(template, bytes.NewReader(fillJSON), out, conf); err != nil {
		return fmt.Errorf("fill form %d: %w", form.Index, err)
	}
	return nil
}

// buildFillForm splits a mapping into pdfcpu text fields and radio groups,
// sorted by name so the fill document is stable across runs.
func buildFillForm(mapping claim.FieldMapping) (fillForm, error) {
	names := make([]string, 0, len(mapping))
	for name := range mapping {
		names = append(names, name)
	}
	sort.Strings(names)

	var entry fillEntry
	for _, name := range names {
		info, err := fields.Lookup(name)
		if err != nil {
			return fillForm{}, fmt.Errorf("fill form: %w", err)
		}
		switch info.Kind {
		case fields.KindRadio:
			entry.RadioButtons = append(entry.RadioButtons, radioGroup{Name: name, Value: mapping[name]})
		default:
			entry.TextFields = append(entry.TextFields, textField{Name: name, Value: mapping[name]})
		}
	}
	return fillForm{Forms: []fillEntry{entry}}, nil
}
