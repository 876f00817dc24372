package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"examgen_client/gateway"
	"examgen_client/middleware"
	"examgen_client/models"
)

// physicsSubjects is the fixed subject list the generation form offers.
var physicsSubjects = []string{
	"mechanika",
	"dynamika",
	"elektryczność",
	"optyka",
	"termodynamika",
	"fizyka nowoczesna",
	"fale",
}

type GeneratorHandler struct {
	gw *gateway.Client
}

func NewGeneratorHandler(gw *gateway.Client) *GeneratorHandler {
	return &GeneratorHandler{gw: gw}
}

type generatorData struct {
	Page
	Form             models.TaskGenerationRequest
	Subjects         []string
	IncludeSolutions bool
	Generating       bool
	Tasks            []taskView
}

func defaultGeneratorForm() models.TaskGenerationRequest {
	return models.TaskGenerationRequest{
		DifficultyLevel: "podstawowy",
		PhysicsSubject:  "mechanika",
		TaskCount:       1,
		TaskType:        "closed",
	}
}

func (h *GeneratorHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "generator.tmpl", generatorData{
		Page:             pageFor(c, "Generator"),
		Form:             defaultGeneratorForm(),
		Subjects:         physicsSubjects,
		IncludeSolutions: true,
	})
}

// Generate submits one generation request. A second submit while one is in
// flight for the same session is rejected instead of queued; there is no way
// to cancel the running one.
func (h *GeneratorHandler) Generate(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	includeSolutions := c.PostForm("includeSolutions") == "true"

	var req models.TaskGenerationRequest
	if err := c.ShouldBind(&req); err != nil {
		data := generatorData{
			Page:             pageFor(c, "Generator"),
			Form:             req,
			Subjects:         physicsSubjects,
			IncludeSolutions: includeSolutions,
		}
		data.Error = "Sprawdź poprawność pól formularza (1–3 zadania, temat wymagany)."
		c.HTML(http.StatusBadRequest, "generator.tmpl", data)
		return
	}

	data := generatorData{
		Page:             pageFor(c, "Generator"),
		Form:             req,
		Subjects:         physicsSubjects,
		IncludeSolutions: includeSolutions,
	}

	if !sess.BeginGeneration() {
		data.Generating = true
		data.Error = "Generowanie już trwa, poczekaj na jego zakończenie."
		c.HTML(http.StatusConflict, "generator.tmpl", data)
		return
	}
	defer sess.EndGeneration()

	resp, err := h.gw.GenerateTasks(c.Request.Context(), sess.Token, req, includeSolutions)
	if err != nil {
		log.Printf("Task generation failed: %v", err)
		data.Error = gateway.Message(err, "Błąd połączenia z serwerem. Sprawdź czy backend działa.")
		c.HTML(http.StatusBadGateway, "generator.tmpl", data)
		return
	}
	if !resp.Success || len(resp.Tasks) == 0 {
		data.Error = resp.Message
		if data.Error == "" {
			data.Error = "Nie udało się wygenerować zadań. Spróbuj ponownie."
		}
		c.HTML(http.StatusOK, "generator.tmpl", data)
		return
	}

	tasks := resp.Tasks
	if !includeSolutions {
		// The request said no solutions; enforce that on the render side
		// too, whatever the backend actually sent back.
		stripped := make([]models.ExamTask, len(tasks))
		for i, task := range tasks {
			stripped[i] = task.WithoutSolutions()
		}
		tasks = stripped
	}

	data.Tasks = numberTasks(tasks)
	data.Notice = "Wygenerowano zadania!"
	c.HTML(http.StatusOK, "generator.tmpl", data)
}
