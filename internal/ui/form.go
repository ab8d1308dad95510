// Package ui builds the interactive terminal forms that stand in for the
// original editor's dialogs.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/anything-stack/skillsmith/internal/skill"
)

// FormValues holds the bound string values for one skill form, keyed by
// form-field name.
type FormValues map[string]*string

// NewFormValues binds a fresh value set seeded from initial.
func NewFormValues(initial map[string]string) FormValues {
	values := make(FormValues, len(skill.RequiredFields))
	for _, f := range skill.RequiredFields {
		v := initial[f.Key]
		values[f.Key] = &v
	}
	return values
}

// Map flattens the bound values back into a plain field mapping, ready for
// validation.
func (v FormValues) Map() map[string]string {
	fields := make(map[string]string, len(v))
	for key, val := range v {
		fields[key] = *val
	}
	return fields
}

// SkillForm builds one form over the required skill fields. All dialogs of
// the editor (add, modify, config defaults) go through this single builder
// rather than each constructing its own widgets.
//
// Fields named in locked are omitted from the form and keep their seeded
// values. Tooltips are attached only when showTooltips is set.
func SkillForm(title string, values FormValues, locked map[string]bool, showTooltips bool) *huh.Form {
	fields := make([]huh.Field, 0, len(skill.RequiredFields)+1)

	if title != "" {
		fields = append(fields, huh.NewNote().Title(Title(title)).Description(Muted(lockedSummary(values, locked))))
	}

	for _, f := range skill.RequiredFields {
		if locked[f.Key] {
			continue
		}

		if f.Multiline {
			in := huh.NewText().
				Title(f.Key).
				Value(values[f.Key])
			if showTooltips {
				in = in.Description(f.Tooltip)
			}
			fields = append(fields, in)
			continue
		}

		in := huh.NewInput().
			Title(f.Key).
			Value(values[f.Key])
		if showTooltips {
			in = in.Placeholder(f.Tooltip)
		}
		fields = append(fields, in)
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// lockedSummary renders the locked fields and their values so the user can
// see what the form will submit without being able to edit it.
func lockedSummary(values FormValues, locked map[string]bool) string {
	var lines []string
	for _, f := range skill.RequiredFields {
		if !locked[f.Key] {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s = %s (locked)", f.Key, strings.TrimSpace(*values[f.Key])))
	}
	return strings.Join(lines, "\n")
}

// Confirm asks a yes/no question.
func Confirm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
