// Package tasktext decodes the opaque generatedText blob a history entry
// carries: a JSON string holding one or more exam tasks.
package tasktext

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"examgen_client/models"
)

type envelope struct {
	Tasks []models.ExamTask `json:"tasks"`
}

// Parse decodes generatedText into its exam tasks. Unlike ParseOrEmpty it
// reports malformed input, so callers that care (logging, tests) can tell a
// genuinely empty generation from a broken blob.
func Parse(generatedText string) ([]models.ExamTask, error) {
	var env envelope
	if err := json.Unmarshal([]byte(generatedText), &env); err != nil {
		return nil, fmt.Errorf("decoding generated text: %w", err)
	}
	if env.Tasks == nil {
		return []models.ExamTask{}, nil
	}
	return env.Tasks, nil
}

// ParseOrEmpty is the render-path variant: a malformed blob yields an empty
// task list and never an error. The failure is logged, not surfaced.
func ParseOrEmpty(generatedText string) []models.ExamTask {
	tasks, err := Parse(generatedText)
	if err != nil {
		log.Printf("Ignoring malformed generated text: %v", err)
		return []models.ExamTask{}
	}
	return tasks
}

// IsCorrectAnswer reports whether an answer option ("A) 42 m/s") matches the
// task's correct answer letter. Tasks without a correct answer mark nothing.
func IsCorrectAnswer(task models.ExamTask, answer string) bool {
	if task.CorrectAnswer == "" || answer == "" {
		return false
	}
	return strings.HasPrefix(answer, task.CorrectAnswer)
}
