package entities

// QuestionType is the authored type of a catalog question.
type QuestionType string

const (
	QuestionSingle        QuestionType = "single"        // radio multiple choice
	QuestionMultiple      QuestionType = "multiple"      // checkbox multiple choice
	QuestionVisualization QuestionType = "visualization" // picture with revealable solution
)

// CatalogOption is an authored answer option.
type CatalogOption struct {
	Text    Text `json:"text"`    // option text per language
	Correct bool `json:"correct"` // whether this is a correct answer
}

// CatalogQuestion is an authored question of the catalog.
type CatalogQuestion struct {
	Nr       int             `json:"nr"`                 // question ordinal (1, 2, 3, ...)
	Category string          `json:"category"`           // subject area, e.g. "Jagdwaffen"
	Type     QuestionType    `json:"type"`               // single, multiple or visualization
	Text     Text            `json:"text"`               // question text per language
	Options  []CatalogOption `json:"options,omitempty"`  // answer options, multiple choice only
	Solution Text            `json:"solution,omitempty"` // explanation, visualization only
}

// Catalog is the question set produced by the authoring step.
type Catalog struct {
	Title        string            `json:"title"`        // title of the question set
	Languages    []string          `json:"languages"`    // languages the content is rendered in
	Questions    []CatalogQuestion `json:"questions"`    // questions in display order
	LastModified string            `json:"lastModified"` // when the catalog was generated
}

// Panels builds a fresh panel sequence from the catalog: one panel per
// question followed by the summary panel. Nothing is selected or evaluated.
func (c *Catalog) Panels() []*Panel {
	panels := make([]*Panel, 0, len(c.Questions)+1)
	for _, q := range c.Questions {
		p := &Panel{
			Kind:     PanelQuestion,
			Number:   q.Nr,
			Category: q.Category,
			Text:     q.Text,
		}

		switch q.Type {
		case QuestionSingle, QuestionMultiple:
			input := InputCheckbox
			if q.Type == QuestionSingle {
				input = InputRadio
			}
			mc := &MultipleChoice{Input: input, Options: make([]*Option, 0, len(q.Options))}
			for _, o := range q.Options {
				mc.Options = append(mc.Options, &Option{Text: o.Text, Correct: o.Correct})
			}
			p.MultipleChoice = mc

		case QuestionVisualization:
			viz := &Visualization{}
			if len(q.Solution) > 0 {
				viz.Solution = &Solution{Text: q.Solution}
			}
			p.Visualization = viz
		}

		panels = append(panels, p)
	}

	return append(panels, NewSummaryPanel())
}
