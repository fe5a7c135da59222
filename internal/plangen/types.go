package plangen

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt tolerates the model emitting week numbers as either JSON numbers
// or strings ("week": 1 vs "week": "1").
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// WeekEntry is one entry of the weekly roadmap.
type WeekEntry struct {
	Week  FlexInt  `json:"week"`
	Topic string   `json:"topic"`
	Notes []string `json:"notes,omitempty"`
	Goal  string   `json:"goal"`
}

// QuizQuestion is one multiple-choice question with four options; Answer
// must equal one of the options.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// PlanContent is the structured study plan as generated, before
// persistence.
type PlanContent struct {
	Summary       string         `json:"summary"`
	Roadmap       []WeekEntry    `json:"roadmap"`
	QuizQuestions []QuizQuestion `json:"quiz_questions"`
}

// GeneratedPlan annotates the content with which path produced it. The
// annotation is for observability and storage only; the client response
// shape is identical either way.
type GeneratedPlan struct {
	PlanContent
	Source string
}
