package models

type TaskGenerationRequest struct {
	TaskTopic       string `json:"taskTopic" form:"taskTopic" binding:"required"`
	DifficultyLevel string `json:"difficultyLevel" form:"difficultyLevel" binding:"required"`
	PhysicsSubject  string `json:"physicsSubject" form:"physicsSubject" binding:"required"`
	TaskCount       int    `json:"taskCount" form:"taskCount" binding:"required,min=1,max=3"`
	TaskType        string `json:"taskType,omitempty" form:"taskType" binding:"omitempty,oneof=open closed"`
}

// ExamTask is a single generated exam question, either fresh from
// /Physics/generate-tasks or decoded out of a stored GeneratedTask blob.
type ExamTask struct {
	Content       string   `json:"content"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correctAnswer"`
	Solution      string   `json:"solution"`
	Source        string   `json:"source"`
}

// WithoutSolutions strips the solution and correct-answer fields. The render
// path applies it whenever the caller asked for tasks without solutions,
// regardless of what the backend actually returned.
func (t ExamTask) WithoutSolutions() ExamTask {
	t.CorrectAnswer = ""
	t.Solution = ""
	return t
}

type TaskGenerationResponse struct {
	Success bool       `json:"success"`
	Tasks   []ExamTask `json:"tasks"`
	Message string     `json:"message,omitempty"`
}

// GeneratedTask is one history entry. GeneratedText holds the original
// generation output as an opaque JSON string; tasktext decodes it.
type GeneratedTask struct {
	ID            int    `json:"id"`
	Prompt        string `json:"prompt"`
	GeneratedText string `json:"generatedText"`
	CreatedAt     string `json:"createdAt"`
}

// TaskPage is the canonical page shape the gateway normalizes the
// backend's list responses into.
type TaskPage struct {
	Tasks       []GeneratedTask
	TotalCount  int
	CurrentPage int
	PageSize    int
	TotalPages  int
}

type PDFLimitStatus struct {
	IsPremium      bool `json:"isPremium"`
	ExportsUsed    int  `json:"exportsUsed"`
	ExportsAllowed int  `json:"exportsAllowed"`
}
