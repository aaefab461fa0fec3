package generator

import (
	"fmt"
	"sync"
)

// Session holds one request and the drafts produced for it across tweaks.
type Session struct {
	ID string

	mu       sync.Mutex
	original Request
	request  Request
	content  Content
	history  []Turn
	gen      *Generator
}

// SessionView is a consistent copy of a session's state.
type SessionView struct {
	ID      string  `json:"id"`
	Request Request `json:"request"`
	Content Content `json:"content"`
	History []Turn  `json:"history"`
}

// NewSession creates a session; nothing is generated until Propose.
func NewSession(id string, req Request, gen *Generator) *Session {
	return &Session{
		ID:       id,
		original: req,
		request:  req,
		gen:      gen,
	}
}

// Propose generates the first draft.
func (s *Session) Propose() Content {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.request = s.original
	s.content = s.gen.Generate(s.request)
	s.appendTurn("", "first draft")
	return s.content
}

// Regenerate re-runs the current request. Structure is stable; filler may differ.
func (s *Session) Regenerate() Content {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = s.gen.Generate(s.request)
	s.appendTurn("", "regenerated")
	return s.content
}

// Tweak applies kind using the generator's strategy.
func (s *Session) Tweak(kind TweakKind) (Content, error) {
	if !kind.Valid() {
		return Content{}, fmt.Errorf("unknown tweak %q", kind)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen.Strategy() == StrategyRegenerate {
		s.request = RequestForTweak(s.original, kind)
		s.content = s.gen.Generate(s.request)
		s.appendTurn(kind, "regenerated as "+string(kind))
		return s.content, nil
	}

	if kind == TweakReal || kind == TweakClean {
		s.request.RealTalk = kind == TweakReal
	}
	prev := s.content
	next := PostProcess(s.gen.Tweak(prev.Text, kind, s.request), s.request)
	next.Template = prev.Template
	next.Signals = prev.Signals
	next.SubjectLine = prev.SubjectLine
	next.Stickers = prev.Stickers
	next.VisualStyle = prev.VisualStyle
	s.content = next
	s.appendTurn(kind, "made "+string(kind))
	return s.content, nil
}

// Request is the request the current content was produced from.
func (s *Session) Request() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.request
}

func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionView{
		ID:      s.ID,
		Request: s.request,
		Content: s.content,
		History: append([]Turn(nil), s.history...),
	}
}

func (s *Session) appendTurn(kind TweakKind, summary string) {
	s.history = append(s.history, Turn{
		Tweak:     kind,
		Content:   s.content,
		Summary:   summary,
		CreatedAt: s.gen.now(),
	})
}
