package assessment

// bank is the fixed, ordered question set. Weights are literal per option and
// deliberately not evenly spaced.
var bank = []Question{
	{
		Position: 1,
		Prompt:   "How are you feeling today?",
		Answers: []AnswerOption{
			{Text: "Ready for business", Weight: 0},
			{Text: "Pretty good", Weight: 0.3},
			{Text: "Feeling creative", Weight: 0.7},
			{Text: "Absolutely fantastic!", Weight: 1},
		},
	},
	{
		Position: 2,
		Prompt:   "What would you like to explore?",
		Answers: []AnswerOption{
			{Text: "Professional achievements", Weight: 0},
			{Text: "Technical skills", Weight: 0.2},
			{Text: "Creative projects", Weight: 0.8},
			{Text: "Fun experiments", Weight: 1},
		},
	},
	{
		Position: 3,
		Prompt:   "How do you prefer to learn about someone?",
		Answers: []AnswerOption{
			{Text: "Through their resume", Weight: 0},
			{Text: "Their work samples", Weight: 0.3},
			{Text: "Their creative process", Weight: 0.7},
			{Text: "Their personality", Weight: 1},
		},
	},
	{
		Position: 4,
		Prompt:   "What catches your attention first?",
		Answers: []AnswerOption{
			{Text: "Clean, organized layouts", Weight: 0},
			{Text: "Clear information", Weight: 0.2},
			{Text: "Interesting visuals", Weight: 0.8},
			{Text: "Fun animations", Weight: 1},
		},
	},
	{
		Position: 5,
		Prompt:   "Your ideal website experience is:",
		Answers: []AnswerOption{
			{Text: "LinkedIn-style professional", Weight: 0},
			{Text: "Clean and minimal", Weight: 0.3},
			{Text: "Visually engaging", Weight: 0.7},
			{Text: "Interactive and playful", Weight: 1},
		},
	},
}
