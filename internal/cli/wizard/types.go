// Package wizard asks the project questions interactively, one huh form
// per question.
package wizard

import "errors"

// Answers holds the values collected for one project. Fields that are
// already set before Run are treated as answered by the caller.
type Answers struct {
	ProjectName  string
	Android      string
	IOS          string
	Addons       []string
	Example      string
	Author       string
	AuthorGithub string
	Homepage     string
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeMultiSelect is a multiple-choice question.
	QuestionTypeMultiSelect
)

// Question defines a single wizard question.
type Question struct {
	ID          string                // Unique identifier
	Type        QuestionType          // Select, Input or MultiSelect
	Title       string                // Question title
	Description string                // Additional description
	Options     []Option              // Options for select questions
	Default     string                // Default value
	DefaultFunc func(*Answers) string // Computes Default from earlier answers
	Validate    func(string) error    // Extra validation for input questions
	Condition   func(*Answers) bool   // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrInvalidName is returned by the project name validator.
	ErrInvalidName = errors.New("invalid name")
)
