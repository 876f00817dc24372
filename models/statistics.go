package models

// Statistics describes the shared exam-task database, not the user's own
// history. Served by /Physics/statistics.
type Statistics struct {
	TotalTasks int            `json:"totalTasks"`
	Years      []int          `json:"years"`
	Levels     []LevelCount   `json:"levels"`
	Subjects   []SubjectCount `json:"subjects"`
}

type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

type SubjectCount struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}
