package gemini

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/GioNegri/PedagogIA2/internal/domain"
	"github.com/GioNegri/PedagogIA2/internal/generation"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// Template names per record kind.
const (
	lessonPlanTemplate = "lesson_plan.tmpl"
	analysisTemplate   = "analysis.tmpl"
	debateTemplate     = "debate.tmpl"
)

// Analysis modes accepted by the analysis prompt.
const (
	ModeSimplify     = "simplify"
	ModeExtractIdeas = "extract-ideas"
	ModeReadingLevel = "reading-level"
)

// analysisInstructions maps an analysis mode to the instruction sentence
// placed at the top of the prompt.
var analysisInstructions = map[string]string{
	ModeSimplify:     "Simplifique o texto a seguir para linguagem acessível",
	ModeExtractIdeas: "Extraia as ideias principais do texto a seguir",
	ModeReadingLevel: "Nivele a leitura do texto a seguir para facilitar a compreensão",
}

// defaultLessonDurationMinutes is used when a lesson-plan request does not
// specify a duration.
const defaultLessonDurationMinutes = 50

// loadPromptTemplates parses the embedded prompt templates.
func loadPromptTemplates() (*template.Template, error) {
	tmpl, err := template.ParseFS(promptFS, "prompts/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt templates: %v",
			generation.ErrInvalidConfig, err)
	}
	return tmpl, nil
}

// lessonPlanData is the data passed to the lesson plan template.
type lessonPlanData struct {
	Topic           string
	Grade           string
	DurationMinutes int
}

// analysisData is the data passed to the analysis template.
type analysisData struct {
	Instruction string
	Text        string
}

// debateData is the data passed to the debate template.
type debateData struct {
	Topic string
	SideA string
	SideB string
}

// buildPrompt validates the request for its kind and renders the matching
// template. It also returns the display title derived for the record.
func buildPrompt(tmpl *template.Template, req generation.Request) (prompt, title string, err error) {
	var buf strings.Builder

	switch req.Kind {
	case domain.KindLessonPlan:
		if req.Topic == "" {
			return "", "", fmt.Errorf("%w: lesson plan requires a topic", generation.ErrInvalidRequest)
		}
		duration := req.DurationMinutes
		if duration <= 0 {
			duration = defaultLessonDurationMinutes
		}
		err = tmpl.ExecuteTemplate(&buf, lessonPlanTemplate, lessonPlanData{
			Topic:           req.Topic,
			Grade:           req.Grade,
			DurationMinutes: duration,
		})
		title = "Plano - " + req.Topic

	case domain.KindAnalysis:
		if req.Text == "" {
			return "", "", fmt.Errorf("%w: analysis requires source text", generation.ErrInvalidRequest)
		}
		instruction, ok := analysisInstructions[req.Mode]
		if !ok {
			return "", "", fmt.Errorf("%w: unknown analysis mode %q", generation.ErrInvalidRequest, req.Mode)
		}
		err = tmpl.ExecuteTemplate(&buf, analysisTemplate, analysisData{
			Instruction: instruction,
			Text:        req.Text,
		})
		title = "Análise de Conteúdo"

	case domain.KindDebate:
		if req.Topic == "" || req.SideA == "" || req.SideB == "" {
			return "", "", fmt.Errorf("%w: debate requires a topic and both sides", generation.ErrInvalidRequest)
		}
		err = tmpl.ExecuteTemplate(&buf, debateTemplate, debateData{
			Topic: req.Topic,
			SideA: req.SideA,
			SideB: req.SideB,
		})
		title = "Debate - " + req.Topic

	default:
		return "", "", fmt.Errorf("%w: %q", generation.ErrUnknownKind, req.Kind)
	}

	if err != nil {
		return "", "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), title, nil
}
