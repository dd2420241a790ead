package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gradeup-ai/gradeup-mvp/internal/models"
)

func TestPromptBuilder(t *testing.T) {
	pb := NewPromptBuilder()
	vacancy := &models.Vacancy{
		Position: "Go Developer",
		Grade:    "middle",
		Tasks:    "build and ship backend services",
		Tools:    "Go, Docker, PostgreSQL",
		Skills:   "Go, SQL, gRPC",
	}
	candidate := &models.Candidate{
		Name:       "Ivan",
		Position:   "Backend Developer",
		City:       "Moscow",
		Skills:     "Go, PostgreSQL",
		Experience: "3 years at a fintech",
	}

	t.Run(`questions prompt carries vacancy and candidate details`, func(t *testing.T) {
		prompt := pb.BuildInterviewQuestionsPrompt(vacancy, candidate)
		require.Contains(t, prompt, "Go Developer")
		require.Contains(t, prompt, "middle")
		require.Contains(t, prompt, "Go, Docker, PostgreSQL")
		require.Contains(t, prompt, "Name: Ivan")
		require.Contains(t, prompt, "exactly 5 interview questions")
	})

	t.Run(`turn prompt embeds the conversation history`, func(t *testing.T) {
		prompt := pb.BuildInterviewTurnPrompt(vacancy, candidate, "Q: hi\nA: hello")
		require.Contains(t, prompt, "Q: hi\nA: hello")
		require.Contains(t, prompt, "follow-up question")
	})

	t.Run(`scoring prompt asks for json with score and feedback`, func(t *testing.T) {
		prompt := pb.BuildScoringPrompt(vacancy, candidate, "the transcript")
		require.Contains(t, prompt, "the transcript")
		require.Contains(t, prompt, `"score"`)
		require.Contains(t, prompt, `"feedback"`)
	})

	t.Run(`profile text skips empty sections`, func(t *testing.T) {
		text := candidateProfileText(&models.Candidate{Name: "Ivan"})
		require.Equal(t, "Name: Ivan", text)
	})
}
