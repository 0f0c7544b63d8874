package wizard

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
)

// stubForms replaces runForm for the duration of the test and counts calls.
func stubForms(t *testing.T, err error) *int {
	t.Helper()
	calls := 0
	orig := runForm
	runForm = func(*huh.Form) error {
		calls++
		return err
	}
	t.Cleanup(func() { runForm = orig })
	return &calls
}

func questionByID(qs []Question, id string) *Question {
	for i := range qs {
		if qs[i].ID == id {
			return &qs[i]
		}
	}
	return nil
}

func questionIDs(qs []Question) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func TestDefaultQuestions(t *testing.T) {
	questions := DefaultQuestions(Defaults{})

	want := []string{
		QuestionName, QuestionAndroid, QuestionIOS, QuestionAddons,
		QuestionExample, QuestionAuthor, QuestionGithub, QuestionHomepage,
	}
	if got := questionIDs(questions); !slices.Equal(got, want) {
		t.Fatalf("question order = %v, want %v", got, want)
	}

	// Select defaults must be the first option.
	for _, q := range questions {
		if q.Type != QuestionTypeSelect {
			continue
		}
		if q.Options[0].Value != q.Default {
			t.Errorf("question %q: first option %q is not the default %q", q.ID, q.Options[0].Value, q.Default)
		}
	}
}

func TestDefaultQuestions_Defaults(t *testing.T) {
	t.Run("git_values", func(t *testing.T) {
		qs := DefaultQuestions(Defaults{Author: "Jane Doe", GithubHandle: "jane"})
		if got := questionByID(qs, QuestionAuthor).Default; got != "Jane Doe" {
			t.Errorf("author default = %q", got)
		}
		if got := questionByID(qs, QuestionGithub).Default; got != "jane" {
			t.Errorf("github default = %q", got)
		}
	})

	t.Run("no_git_values", func(t *testing.T) {
		qs := DefaultQuestions(Defaults{})
		if got := questionByID(qs, QuestionAuthor).Default; got != "Your Name" {
			t.Errorf("author default = %q, want Your Name", got)
		}
		if got := questionByID(qs, QuestionGithub).Default; got != "" {
			t.Errorf("github default = %q, want empty", got)
		}
	})
}

func TestDefaultQuestions_AddonsSkippedOnCI(t *testing.T) {
	a := &Answers{}

	visible := FilteredQuestions(DefaultQuestions(Defaults{CI: true}), a)
	if questionByID(visible, QuestionAddons) != nil {
		t.Error("addons question should be hidden on CI")
	}

	visible = FilteredQuestions(DefaultQuestions(Defaults{}), a)
	if questionByID(visible, QuestionAddons) == nil {
		t.Error("addons question should be visible outside CI")
	}
}

func TestDefaultHomepage(t *testing.T) {
	tests := []struct {
		name string
		a    Answers
		want string
	}{
		{"with_handle", Answers{ProjectName: "demo", AuthorGithub: "jane"}, "https://github.com/jane/demo"},
		{"without_handle", Answers{ProjectName: "demo"}, "https://github.com/username/demo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultHomepage(&tt.a); got != tt.want {
				t.Errorf("DefaultHomepage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWithout(t *testing.T) {
	qs := Without(DefaultQuestions(Defaults{}), QuestionName, QuestionHomepage)

	want := []string{QuestionAndroid, QuestionIOS, QuestionAddons, QuestionExample, QuestionAuthor, QuestionGithub}
	if got := questionIDs(qs); !slices.Equal(got, want) {
		t.Errorf("Without() = %v, want %v", got, want)
	}
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"my-nitro-module", false},
		{"My_Module2", false},
		{"  padded  ", false},
		{"has space", true},
		{"dot.name", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validateProjectName(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateProjectName(%q) = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidName) {
				t.Errorf("error = %v, want ErrInvalidName", err)
			}
		})
	}
}

func TestRun_EmptyQuestions(t *testing.T) {
	if err := Run(nil, &Answers{}); err != ErrNoQuestions {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}
}

func TestRun_StoresDefaults(t *testing.T) {
	calls := stubForms(t, nil)

	a := &Answers{}
	err := Run(DefaultQuestions(Defaults{Author: "Jane Doe", GithubHandle: "jane", CI: true}), a)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if *calls != 7 {
		t.Errorf("forms run = %d, want 7 (addons skipped on CI)", *calls)
	}
	want := Answers{
		ProjectName:  "my-nitro-module",
		Android:      "kotlin",
		IOS:          "swift",
		Example:      "default",
		Author:       "Jane Doe",
		AuthorGithub: "jane",
		Homepage:     "https://github.com/jane/my-nitro-module",
	}
	if a.ProjectName != want.ProjectName || a.Android != want.Android || a.IOS != want.IOS ||
		a.Example != want.Example || a.Author != want.Author || a.AuthorGithub != want.AuthorGithub ||
		a.Homepage != want.Homepage || len(a.Addons) != 0 {
		t.Errorf("answers = %+v, want %+v", *a, want)
	}
}

func TestRun_HomepageUsesEarlierAnswers(t *testing.T) {
	stubForms(t, nil)

	a := &Answers{ProjectName: "camera-kit", AuthorGithub: "octo"}
	questions := Without(DefaultQuestions(Defaults{}), QuestionName, QuestionGithub)
	if err := Run(questions, a); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if a.Homepage != "https://github.com/octo/camera-kit" {
		t.Errorf("Homepage = %q", a.Homepage)
	}
}

func TestRun_ConditionSkipsAll(t *testing.T) {
	calls := stubForms(t, nil)

	questions := []Question{
		{ID: QuestionName, Type: QuestionTypeInput, Condition: func(*Answers) bool { return false }},
	}
	if err := Run(questions, &Answers{}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if *calls != 0 {
		t.Errorf("forms run = %d, want 0", *calls)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Run("user_abort", func(t *testing.T) {
		stubForms(t, huh.ErrUserAborted)
		err := Run(DefaultQuestions(Defaults{}), &Answers{})
		if !errors.Is(err, ErrCancelled) {
			t.Errorf("error = %v, want ErrCancelled", err)
		}
	})

	t.Run("form_failure", func(t *testing.T) {
		boom := errors.New("no tty")
		stubForms(t, boom)
		err := Run(DefaultQuestions(Defaults{}), &Answers{})
		if !errors.Is(err, boom) {
			t.Errorf("error = %v, want wrapped %v", err, boom)
		}
		if !strings.HasPrefix(err.Error(), "wizard error:") {
			t.Errorf("error = %q, want wizard error prefix", err)
		}
	})
}

func TestSaveAnswer(t *testing.T) {
	a := &Answers{}
	saveAnswer(QuestionName, "demo", a)
	saveAnswer(QuestionAndroid, "cpp", a)
	saveAnswer(QuestionIOS, "cpp", a)
	saveAnswer(QuestionExample, "full", a)
	saveAnswer(QuestionAuthor, "Jane", a)
	saveAnswer(QuestionGithub, "jane", a)
	saveAnswer(QuestionHomepage, "https://example.com", a)
	saveAnswer("unknown", "ignored", a)

	want := Answers{
		ProjectName: "demo", Android: "cpp", IOS: "cpp", Example: "full",
		Author: "Jane", AuthorGithub: "jane", Homepage: "https://example.com",
	}
	if a.ProjectName != want.ProjectName || a.Android != want.Android || a.IOS != want.IOS ||
		a.Example != want.Example || a.Author != want.Author || a.AuthorGithub != want.AuthorGithub ||
		a.Homepage != want.Homepage {
		t.Errorf("answers = %+v, want %+v", *a, want)
	}
}

func TestSaveList_Copies(t *testing.T) {
	a := &Answers{}
	vals := []string{"macos"}
	saveList(QuestionAddons, vals, a)
	vals[0] = "windows"

	if !slices.Equal(a.Addons, []string{"macos"}) {
		t.Errorf("Addons = %v, want [macos]", a.Addons)
	}
}

func TestBuildInputField_Accessible(t *testing.T) {
	q := questionByID(DefaultQuestions(Defaults{}), QuestionName)

	t.Run("value", func(t *testing.T) {
		a := &Answers{}
		field := buildInputField(q, a)
		if err := field.RunAccessible(io.Discard, strings.NewReader("camera-kit\n")); err != nil {
			t.Logf("RunAccessible returned error (acceptable in CI): %v", err)
			return
		}
		if a.ProjectName != "camera-kit" {
			t.Errorf("ProjectName = %q, want camera-kit", a.ProjectName)
		}
	})

	t.Run("empty_takes_default", func(t *testing.T) {
		a := &Answers{}
		field := buildInputField(q, a)
		if a.ProjectName != "my-nitro-module" {
			t.Errorf("ProjectName before input = %q, want default", a.ProjectName)
		}
		if err := field.RunAccessible(io.Discard, strings.NewReader("\n")); err != nil {
			t.Logf("RunAccessible returned error (acceptable in CI): %v", err)
			return
		}
		if a.ProjectName != "my-nitro-module" {
			t.Errorf("ProjectName = %q, want default", a.ProjectName)
		}
	})
}

func TestBuildQuestionGroup(t *testing.T) {
	for _, q := range DefaultQuestions(Defaults{}) {
		t.Run(q.ID, func(t *testing.T) {
			if buildQuestionGroup(&q, &Answers{}) == nil {
				t.Fatal("buildQuestionGroup returned nil")
			}
		})
	}
}

func TestNewNitroWizardTheme(t *testing.T) {
	if newNitroWizardTheme() == nil {
		t.Fatal("newNitroWizardTheme() returned nil")
	}
}
