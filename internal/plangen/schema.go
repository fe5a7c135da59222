package plangen

import (
	"fmt"
	"strings"
)

// Target content sizes. Counts are a soft target: a shorter or longer but
// otherwise well-formed response is accepted, and the exact counts are
// enforced only when synthesizing fallback content.
const (
	RoadmapWeeks  = 7
	QuizQuestions = 10
	QuizOptions   = 4
)

// Validate checks the parsed plan payload against the required shape and
// returns the list of missing or malformed fields. An empty result means
// the payload is usable. Pure function; no side effects.
func Validate(p *PlanContent) []string {
	var problems []string

	if strings.TrimSpace(p.Summary) == "" {
		problems = append(problems, "summary is empty")
	}

	if len(p.Roadmap) == 0 {
		problems = append(problems, "roadmap is empty")
	}
	for i, week := range p.Roadmap {
		if week.Week == 0 {
			problems = append(problems, fmt.Sprintf("roadmap[%d].week is missing", i))
		}
		if strings.TrimSpace(week.Topic) == "" && len(week.Notes) == 0 {
			problems = append(problems, fmt.Sprintf("roadmap[%d] has neither topic nor notes", i))
		}
		if strings.TrimSpace(week.Goal) == "" {
			problems = append(problems, fmt.Sprintf("roadmap[%d].goal is missing", i))
		}
	}

	if len(p.QuizQuestions) == 0 {
		problems = append(problems, "quiz_questions is empty")
	}
	for i, q := range p.QuizQuestions {
		if strings.TrimSpace(q.Question) == "" {
			problems = append(problems, fmt.Sprintf("quiz_questions[%d].question is missing", i))
		}
		if len(q.Options) != QuizOptions {
			problems = append(problems, fmt.Sprintf("quiz_questions[%d] has %d options, want %d", i, len(q.Options), QuizOptions))
			continue
		}
		if !containsOption(q.Options, q.Answer) {
			problems = append(problems, fmt.Sprintf("quiz_questions[%d].answer does not match any option", i))
		}
	}

	return problems
}

func containsOption(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}
