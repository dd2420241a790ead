package services

import (
	"fmt"
	"strings"

	"github.com/gradeup-ai/gradeup-mvp/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildInterviewQuestionsPrompt creates the prompt for the opening question set
// of an AI HR interview.
func (pb *PromptBuilder) BuildInterviewQuestionsPrompt(vacancy *models.Vacancy, candidate *models.Candidate) string {
	return fmt.Sprintf(`You are an experienced HR interviewer conducting a screening interview for a %s position (%s level).

VACANCY:
%s

CANDIDATE PROFILE:
%s

Prepare exactly 5 interview questions for this candidate:
1. One introduction question about the candidate's background
2. Two technical questions grounded in the vacancy's tools and skills
3. One question testing theoretical knowledge required by the vacancy
4. One situational question about the tasks listed in the vacancy

Return the questions as a numbered list, one question per line, no preamble.`,
		vacancy.Position, vacancy.Grade, vacancy.DescriptionText(), candidateProfileText(candidate))
}

// BuildInterviewTurnPrompt creates the prompt for the next interviewer turn
// given the conversation so far.
func (pb *PromptBuilder) BuildInterviewTurnPrompt(vacancy *models.Vacancy, candidate *models.Candidate, history string) string {
	return fmt.Sprintf(`You are an experienced HR interviewer in the middle of a screening interview for a %s position.

VACANCY:
%s

CANDIDATE PROFILE:
%s

CONVERSATION SO FAR:
%s

Write the interviewer's next line: react briefly to the candidate's last answer and ask one follow-up question relevant to the vacancy. Return only the interviewer's line, no labels.`,
		vacancy.Position, vacancy.DescriptionText(), candidateProfileText(candidate), history)
}

// BuildScoringPrompt creates the prompt that turns an interview transcript
// into a numeric score and feedback.
func (pb *PromptBuilder) BuildScoringPrompt(vacancy *models.Vacancy, candidate *models.Candidate, transcript string) string {
	return fmt.Sprintf(`You are an experienced technical hiring manager assessing a completed screening interview for a %s position (%s level).

VACANCY:
%s

CANDIDATE PROFILE:
%s

INTERVIEW TRANSCRIPT:
%s

Evaluate how well the candidate's answers match the vacancy requirements.

Return your response in the following JSON format:
{
  "score": <0-100, overall interview score>,
  "feedback": "<3-5 sentences: strengths, gaps, and a hire / no-hire recommendation>"
}

Be objective. Reference specific answers from the transcript to justify the score.`,
		vacancy.Position, vacancy.Grade, vacancy.DescriptionText(), candidateProfileText(candidate), transcript)
}

func candidateProfileText(c *models.Candidate) string {
	var parts []string
	parts = append(parts, "Name: "+c.Name)
	if c.Position != "" {
		parts = append(parts, "Position: "+c.Position)
	}
	if c.City != "" {
		parts = append(parts, "City: "+c.City)
	}
	if c.Skills != "" {
		parts = append(parts, "Skills: "+c.Skills)
	}
	if c.Experience != "" {
		parts = append(parts, "Experience: "+c.Experience)
	}
	if c.ResumeText != "" {
		parts = append(parts, "Resume:\n"+c.ResumeText)
	}
	return strings.Join(parts, "\n")
}
