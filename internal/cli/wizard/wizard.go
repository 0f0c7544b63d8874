package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Brand colors of the wizard theme (dark variants).
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#F2A58E"
	ColorSuccess   = "#5FD787"
	ColorError     = "#FF5F5F"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#8A8A8A"
	ColorBorder    = "#4B5563"
)

// runForm runs one form. Tests replace it to avoid a TTY.
var runForm = func(f *huh.Form) error { return f.Run() }

// Run asks every question whose condition holds and stores the answers in a.
// Each question runs as its own independent huh.Form to avoid the huh v0.8.x
// YOffset scroll bug that occurs when multiple groups share a single viewport.
func Run(questions []Question, a *Answers) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	theme := newNitroWizardTheme()

	for i := range questions {
		q := &questions[i]

		// Pre-check condition: skip questions whose condition is not met.
		if q.Condition != nil && !q.Condition(a) {
			continue
		}

		form := huh.NewForm(buildQuestionGroup(q, a)).
			WithTheme(theme).
			WithAccessible(false)

		if err := runForm(form); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrCancelled
			}
			return fmt.Errorf("wizard error: %w", err)
		}
	}

	return nil
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, a *Answers) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, a)
	case QuestionTypeMultiSelect:
		field = buildMultiSelectField(q, a)
	default:
		field = buildInputField(q, a)
	}

	return huh.NewGroup(field)
}

// defaultFor resolves the default value of q against the answers so far.
func defaultFor(q *Question, a *Answers) string {
	if q.DefaultFunc != nil {
		return q.DefaultFunc(a)
	}
	return q.Default
}

func huhOptions(opts []Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(opts))
	for i, opt := range opts {
		out[i] = huh.NewOption(opt.Label, opt.Value)
	}
	return out
}

// buildSelectField creates a huh.Select field for a select-type question.
func buildSelectField(q *Question, a *Answers) *huh.Select[string] {
	selected := defaultFor(q, a)
	saveAnswer(q.ID, selected, a)

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(huhOptions(q.Options)...).
		Value(&selected)

	id := q.ID
	sel.Validate(func(val string) error {
		saveAnswer(id, val, a)
		return nil
	})

	return sel
}

// buildMultiSelectField creates a huh.MultiSelect field. Nothing is
// selected initially.
func buildMultiSelectField(q *Question, a *Answers) *huh.MultiSelect[string] {
	var selected []string

	ms := huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(huhOptions(q.Options)...).
		Value(&selected)

	id := q.ID
	ms.Validate(func(vals []string) error {
		saveList(id, vals, a)
		return nil
	})

	return ms
}

// buildInputField creates a huh.Input field for an input-type question.
// Empty input takes the default.
func buildInputField(q *Question, a *Answers) *huh.Input {
	defVal := defaultFor(q, a)
	value := defVal
	saveAnswer(q.ID, defVal, a)

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if defVal != "" {
		inp = inp.Placeholder(defVal)
	}

	id := q.ID
	validate := q.Validate
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" {
			v = defVal
		}
		if validate != nil {
			if err := validate(v); err != nil {
				return err
			}
		}
		saveAnswer(id, v, a)
		return nil
	})

	return inp
}

// saveAnswer stores a single-value answer.
func saveAnswer(id, value string, a *Answers) {
	switch id {
	case QuestionName:
		a.ProjectName = value
	case QuestionAndroid:
		a.Android = value
	case QuestionIOS:
		a.IOS = value
	case QuestionExample:
		a.Example = value
	case QuestionAuthor:
		a.Author = value
	case QuestionGithub:
		a.AuthorGithub = value
	case QuestionHomepage:
		a.Homepage = value
	}
}

// saveList stores a multi-value answer.
func saveList(id string, values []string, a *Answers) {
	if id == QuestionAddons {
		a.Addons = append([]string(nil), values...)
	}
}

// newNitroWizardTheme creates the huh.Theme used by every prompt.
func newNitroWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3B", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#A04A30", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
