package lint

import "fmt"

// Kind identifies a class of validation finding.
type Kind string

const (
	KindMissingSubject   Kind = "missing-subject"
	KindSubjectTooLong   Kind = "subject-too-long"
	KindMissingSeparator Kind = "missing-separator"
	KindMissingBody      Kind = "missing-body"
	KindLineTooLong      Kind = "line-too-long"
)

// Separator names which blank-line rule a missing-separator finding is about.
type Separator string

const (
	SeparatorSubjectBody Separator = "subject-body"
	SeparatorBodySignoff Separator = "body-signoff"
)

// Finding is a single rule violation raised against a commit message.
// It carries structured data; the user-facing text is produced by String
// so reporters can filter or render without string matching.
type Finding struct {
	Kind      Kind
	Separator Separator // set for KindMissingSeparator
	Limit     int       // set for KindSubjectTooLong and KindLineTooLong
	Line      string    // set for KindLineTooLong
}

// String renders the finding as the message shown to committers.
func (f Finding) String() string {
	switch f.Kind {
	case KindMissingSubject:
		return "Commit message is missing subject!"
	case KindSubjectTooLong:
		return fmt.Sprintf("Subject exceeds %d characters!", f.Limit)
	case KindMissingSeparator:
		if f.Separator == SeparatorBodySignoff {
			return "Commit description and Signed-off-by must be separated by a blank line"
		}
		return "Commit subject and description must be separated by a blank line"
	case KindMissingBody:
		return "Commit message is missing description!"
	case KindLineTooLong:
		return fmt.Sprintf("The following line in the commit description exceeds %d characters: %s", f.Limit, f.Line)
	}
	return string(f.Kind)
}

// Messages renders a finding list to user-facing strings, preserving order.
func Messages(findings []Finding) []string {
	if len(findings) == 0 {
		return nil
	}
	msgs := make([]string, len(findings))
	for i, f := range findings {
		msgs[i] = f.String()
	}
	return msgs
}
