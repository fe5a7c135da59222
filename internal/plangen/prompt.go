package plangen

import "fmt"

const promptTemplate = `Create a comprehensive study plan for '%s' at '%s' level.
Include:
1. A short summary (40-80 words).
2. A %d-week roadmap. Each week needs: "week" (number), "topic" (short phrase), "notes" (3-10 short bullet points), "goal" (one sentence).
3. %d multiple-choice questions. Each question needs: "question", "options" (exactly %d labeled choices), "answer" (must exactly match one of the options).

Return only a valid JSON object:
{
  "summary": "...",
  "roadmap": [{"week": 1, "topic": "...", "notes": ["..."], "goal": "..."}],
  "quiz_questions": [{"question": "...", "options": ["A) ...", "B) ...", "C) ...", "D) ..."], "answer": "A) ..."}]
}
Only raw JSON. No markdown.`

const strictDirective = `

IMPORTANT: Your previous response could not be parsed. Respond with ONLY the raw JSON object described above: no code fences, no commentary, no trailing commas, every field present and complete.`

// BuildPrompt is the first-attempt prompt for a subject/level pair.
func BuildPrompt(subject, level string) string {
	return fmt.Sprintf(promptTemplate, subject, level, RoadmapWeeks, QuizQuestions, QuizOptions)
}

// BuildStrictPrompt reinforces JSON-only output for the single retry after
// a failed attempt.
func BuildStrictPrompt(subject, level string) string {
	return BuildPrompt(subject, level) + strictDirective
}
