package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GioNegri/PedagogIA2/internal/domain"
	"github.com/GioNegri/PedagogIA2/internal/generation"
)

func TestBuildPromptLessonPlan(t *testing.T) {
	t.Parallel()
	tmpl, err := loadPromptTemplates()
	require.NoError(t, err)

	t.Run("renders topic, grade and duration", func(t *testing.T) {
		t.Parallel()
		prompt, title, err := buildPrompt(tmpl, generation.Request{
			Kind:            domain.KindLessonPlan,
			Topic:           "Fotossíntese",
			Grade:           "7º ano",
			DurationMinutes: 90,
		})
		require.NoError(t, err)

		assert.Equal(t, "Plano - Fotossíntese", title)
		assert.Contains(t, prompt, "Fotossíntese")
		assert.Contains(t, prompt, "7º ano")
		assert.Contains(t, prompt, "90")
	})

	t.Run("defaults the duration", func(t *testing.T) {
		t.Parallel()
		prompt, _, err := buildPrompt(tmpl, generation.Request{
			Kind:  domain.KindLessonPlan,
			Topic: "Frações",
		})
		require.NoError(t, err)
		assert.Contains(t, prompt, "50")
	})

	t.Run("requires a topic", func(t *testing.T) {
		t.Parallel()
		_, _, err := buildPrompt(tmpl, generation.Request{Kind: domain.KindLessonPlan})
		assert.ErrorIs(t, err, generation.ErrInvalidRequest)
	})
}

func TestBuildPromptAnalysis(t *testing.T) {
	t.Parallel()
	tmpl, err := loadPromptTemplates()
	require.NoError(t, err)

	t.Run("each mode renders its instruction", func(t *testing.T) {
		t.Parallel()
		for mode, instruction := range analysisInstructions {
			prompt, title, err := buildPrompt(tmpl, generation.Request{
				Kind: domain.KindAnalysis,
				Text: "O ciclo da água é o movimento contínuo da água.",
				Mode: mode,
			})
			require.NoError(t, err, "mode %q", mode)
			assert.Equal(t, "Análise de Conteúdo", title)
			assert.Contains(t, prompt, instruction)
			assert.Contains(t, prompt, "ciclo da água")
		}
	})

	t.Run("requires source text", func(t *testing.T) {
		t.Parallel()
		_, _, err := buildPrompt(tmpl, generation.Request{
			Kind: domain.KindAnalysis,
			Mode: ModeSimplify,
		})
		assert.ErrorIs(t, err, generation.ErrInvalidRequest)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()
		_, _, err := buildPrompt(tmpl, generation.Request{
			Kind: domain.KindAnalysis,
			Text: "texto",
			Mode: "summarize",
		})
		assert.ErrorIs(t, err, generation.ErrInvalidRequest)
	})
}

func TestBuildPromptDebate(t *testing.T) {
	t.Parallel()
	tmpl, err := loadPromptTemplates()
	require.NoError(t, err)

	t.Run("renders both sides", func(t *testing.T) {
		t.Parallel()
		prompt, title, err := buildPrompt(tmpl, generation.Request{
			Kind:  domain.KindDebate,
			Topic: "Energia Nuclear",
			SideA: "A favor",
			SideB: "Contra",
		})
		require.NoError(t, err)
		assert.Equal(t, "Debate - Energia Nuclear", title)
		assert.Contains(t, prompt, "A favor")
		assert.Contains(t, prompt, "Contra")
	})

	t.Run("requires topic and both sides", func(t *testing.T) {
		t.Parallel()
		_, _, err := buildPrompt(tmpl, generation.Request{
			Kind:  domain.KindDebate,
			Topic: "Energia Nuclear",
			SideA: "A favor",
		})
		assert.ErrorIs(t, err, generation.ErrInvalidRequest)
	})
}

func TestBuildPromptUnknownKind(t *testing.T) {
	t.Parallel()
	tmpl, err := loadPromptTemplates()
	require.NoError(t, err)

	_, _, err = buildPrompt(tmpl, generation.Request{Kind: "poem"})
	assert.ErrorIs(t, err, generation.ErrUnknownKind)
}
