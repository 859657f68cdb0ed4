package generation

import "context"

// Request describes one content-generation invocation. Kind selects the
// prompt; the remaining fields feed the template for that kind and are
// ignored by the others.
type Request struct {
	// Kind is one of the domain record kinds: lesson-plan, analysis, debate.
	Kind string

	// Topic is the subject of a lesson plan or debate.
	Topic string

	// Grade is the school grade/year a lesson plan targets.
	Grade string

	// DurationMinutes is the length of the lesson being planned.
	DurationMinutes int

	// Text is the source material for an analysis.
	Text string

	// Mode selects the analysis flavor: simplify, extract-ideas or
	// reading-level.
	Mode string

	// SideA and SideB are the two positions of a debate.
	SideA string
	SideB string
}

// Result is the generated content together with the title derived for it.
type Result struct {
	Title string
	Body  string
}

// Generator defines the interface for producing educational content from a
// request. This interface is the boundary between the application core and
// the external LLM service; the core only ever sees the resulting text.
type Generator interface {
	// Generate produces content for the request.
	// Returns an error from this package's taxonomy if generation fails.
	Generate(ctx context.Context, req Request) (*Result, error)
}
