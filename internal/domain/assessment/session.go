package assessment

import "errors"

var (
	ErrNoSelection   = errors.New("no answer selected for the current question")
	ErrInvalidOption = errors.New("answer option out of range")
	ErrFinished      = errors.New("assessment already finished")
)

// Session is the selection state of one run through the quiz: which question is
// showing and which option is chosen for each question. "Next" is only legal
// once the current question has a selection.
type Session struct {
	questions []Question
	current   int
	selected  map[int]int
	finished  bool
}

func NewSession() *Session {
	return &Session{
		questions: Questions(),
		selected:  make(map[int]int, len(bank)),
	}
}

func (s *Session) Index() int { return s.current }

func (s *Session) Current() Question { return s.questions[s.current] }

func (s *Session) IsLast() bool { return s.current == len(s.questions)-1 }

func (s *Session) Finished() bool { return s.finished }

// Progress is the percentage shown in the progress bar, counting the current question.
func (s *Session) Progress() float64 {
	return float64(s.current+1) / float64(len(s.questions)) * 100
}

// Select chooses an option for the current question, replacing any earlier choice.
func (s *Session) Select(option int) error {
	if s.finished {
		return ErrFinished
	}
	q := s.questions[s.current]
	if option < 0 || option >= len(q.Answers) {
		return ErrInvalidOption
	}
	s.selected[q.Position] = option
	return nil
}

// Selected reports the option chosen for the current question, if any.
func (s *Session) Selected() (int, bool) {
	opt, ok := s.selected[s.questions[s.current].Position]
	return opt, ok
}

func (s *Session) CanAdvance() bool {
	_, ok := s.Selected()
	return ok && !s.finished
}

// Next moves to the following question. On the last question it marks the
// session finished and returns done=true.
func (s *Session) Next() (done bool, err error) {
	if s.finished {
		return true, ErrFinished
	}
	if !s.CanAdvance() {
		return false, ErrNoSelection
	}
	if s.IsLast() {
		s.finished = true
		return true, nil
	}
	s.current++
	return false, nil
}

func (s *Session) Answers() Answers {
	out := make(Answers, len(s.selected))
	for _, q := range s.questions {
		if opt, ok := s.selected[q.Position]; ok {
			out[q.Position] = q.Answers[opt].Weight
		}
	}
	return out
}

func (s *Session) Score() (float64, error) {
	return ComputeScore(s.Answers())
}
