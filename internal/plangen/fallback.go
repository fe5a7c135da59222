package plangen

import "fmt"

// fallbackAnswer is the fixed correct option label for placeholder
// questions.
const fallbackAnswer = "A) Review the week's material"

// Fallback synthesizes a deterministic placeholder plan: used when both
// generation attempts produced nothing usable, so the caller can degrade
// gracefully instead of failing the request.
func Fallback(subject, level string) PlanContent {
	plan := PlanContent{
		Summary: fmt.Sprintf(
			"This is a %d-week starter study plan for %s at %s level. "+
				"Automatic plan generation was unavailable, so each week holds a placeholder you can refine: review your course material, take notes, and test yourself with the practice questions below.",
			RoadmapWeeks, subject, level),
	}

	for week := 1; week <= RoadmapWeeks; week++ {
		plan.Roadmap = append(plan.Roadmap, WeekEntry{
			Week:  FlexInt(week),
			Topic: fmt.Sprintf("%s fundamentals, part %d", subject, week),
			Notes: []string{
				"Read the relevant chapter of your course material",
				"Write a one-page summary in your own words",
				"Solve practice exercises and note what was hard",
			},
			Goal: fmt.Sprintf("Be able to explain this week's %s topics without notes", subject),
		})
	}

	for i := 1; i <= QuizQuestions; i++ {
		plan.QuizQuestions = append(plan.QuizQuestions, QuizQuestion{
			Question: fmt.Sprintf("Placeholder question %d: have you reviewed the %s material for week %d?", i, subject, ((i-1)%RoadmapWeeks)+1),
			Options: []string{
				fallbackAnswer,
				"B) Skip ahead without reviewing",
				"C) Only skim the headings",
				"D) Postpone it indefinitely",
			},
			Answer: fallbackAnswer,
		})
	}

	return plan
}
