package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"speakup/generator"
	"speakup/publisher"
	"speakup/store"
)

type Server struct {
	gen      *generator.Generator
	pub      *publisher.Publisher
	messages store.Store
	sessions *sessionStore
	log      *zap.Logger
	now      func() time.Time
}

// maxSessions bounds the in-memory session table; the oldest session is evicted first.
const maxSessions = 1000

type sessionStore struct {
	mu       sync.Mutex
	limit    int
	order    []string
	sessions map[string]*generator.Session
}

func newSessionStore(limit int) *sessionStore {
	return &sessionStore{limit: limit, sessions: make(map[string]*generator.Session)}
}

func (s *sessionStore) set(id string, sess *generator.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		s.order = append(s.order, id)
	}
	s.sessions[id] = sess
	for s.limit > 0 && len(s.order) > s.limit {
		delete(s.sessions, s.order[0])
		s.order = s.order[1:]
	}
}

func (s *sessionStore) get(id string) (*generator.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func New(gen *generator.Generator, messages store.Store, pub *publisher.Publisher, log *zap.Logger) (*Server, error) {
	if gen == nil {
		return nil, errors.New("generator required")
	}
	if messages == nil {
		return nil, errors.New("message store required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if pub == nil {
		pub = publisher.New(log)
	}
	return &Server{
		gen:      gen,
		pub:      pub,
		messages: messages,
		sessions: newSessionStore(maxSessions),
		log:      log,
		now:      time.Now,
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/clarify", s.handleClarify)
		r.Post("/generate", s.handleGenerate)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleSessionCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.withSession(s.handleSessionGet))
				r.Post("/tweak", s.withSession(s.handleSessionTweak))
				r.Post("/regenerate", s.withSession(s.handleSessionRegenerate))
				r.Post("/save", s.withSession(s.handleSessionSave))
				r.Get("/export", s.withSession(s.handleSessionExport))
			})
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", s.handleMessageList)
			r.Get("/export", s.handleMessageExport)
			r.Get("/{id}", s.handleMessageGet)
			r.Delete("/{id}", s.handleMessageDelete)
		})
	})
	return r
}

// --- Handlers ---

type promptReq struct {
	Prompt string `json:"prompt"`
}

type clarifyReq struct {
	Prompt  string                    `json:"prompt"`
	Answers *generator.ClarifyAnswers `json:"answers,omitempty"`
}

type clarifyResp struct {
	NeedsClarification bool                  `json:"needs_clarification"`
	Suggestions        generator.Suggestions `json:"suggestions"`
	Request            *generator.Request    `json:"request,omitempty"`
}

type tweakReq struct {
	Kind string `json:"kind"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req promptReq
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, generator.Analyze(req.Prompt))
}

// handleClarify reports whether a prompt is vague; with answers it also returns the
// completed request.
func (s *Server) handleClarify(w http.ResponseWriter, r *http.Request) {
	var req clarifyReq
	if !decode(w, r, &req) {
		return
	}
	resp := clarifyResp{
		NeedsClarification: generator.NeedsClarification(req.Prompt),
		Suggestions:        generator.SuggestionsFor(req.Prompt),
	}
	if req.Answers != nil {
		completed := generator.Clarify(req.Prompt, *req.Answers)
		resp.Request = &completed
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generator.Request
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.generate(req))
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	var req generator.Request
	if !decode(w, r, &req) {
		return
	}
	sess := generator.NewSession(uuid.NewString(), req, s.gen)
	if err := s.guard(func() { sess.Propose() }); err != nil {
		s.log.Error("session draft failed", zap.String("session", sess.ID), zap.Error(err))
		writeJSON(w, http.StatusOK, generator.SessionView{ID: sess.ID, Request: req, Content: generator.Fallback(req)})
		return
	}
	s.sessions.set(sess.ID, sess)
	s.log.Info("session created", zap.String("session", sess.ID), zap.String("format", string(req.Format)))
	writeJSON(w, http.StatusCreated, sess.View())
}

func (s *Server) handleSessionGet(w http.ResponseWriter, _ *http.Request, sess *generator.Session) {
	writeJSON(w, http.StatusOK, sess.View())
}

func (s *Server) handleSessionTweak(w http.ResponseWriter, r *http.Request, sess *generator.Session) {
	var req tweakReq
	if !decode(w, r, &req) {
		return
	}
	kind, err := generator.ParseTweakKind(req.Kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := sess.Tweak(kind); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.log.Debug("session tweaked", zap.String("session", sess.ID), zap.String("kind", string(kind)))
	writeJSON(w, http.StatusOK, sess.View())
}

func (s *Server) handleSessionRegenerate(w http.ResponseWriter, _ *http.Request, sess *generator.Session) {
	sess.Regenerate()
	writeJSON(w, http.StatusOK, sess.View())
}

func (s *Server) handleSessionSave(w http.ResponseWriter, r *http.Request, sess *generator.Session) {
	view := sess.View()
	msg, err := store.NewMessage(view.Request, view.Content, s.now())
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	if err := s.messages.Save(r.Context(), &msg); err != nil {
		s.writeStoreError(w, err)
		return
	}
	s.log.Info("message saved", zap.String("session", sess.ID), zap.String("message", msg.ID))
	writeJSON(w, http.StatusCreated, msg)
}

func (s *Server) handleSessionExport(w http.ResponseWriter, r *http.Request, sess *generator.Session) {
	format := publisher.FormatText
	if q := r.URL.Query().Get("format"); q != "" {
		f, err := publisher.ParseFormat(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		format = f
	}
	view := sess.View()
	out, err := s.pub.Render(publisher.Document{Content: view.Content, Request: view.Request, CreatedAt: s.now()}, format)
	if err != nil {
		s.log.Error("export failed", zap.String("session", sess.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", publisher.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", publisher.FileName(format)))
	_, _ = w.Write(out)
}

func (s *Server) handleMessageList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.Filter{
		Search: q.Get("q"),
		Format: generator.Format(q.Get("format")),
		Tone:   generator.Tone(q.Get("tone")),
	}
	if l := q.Get("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		f.Limit = n
	}
	msgs, err := s.messages.List(r.Context(), f)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) handleMessageExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="speakup-messages.json"`)
	if err := store.ExportJSON(r.Context(), s.messages, w); err != nil {
		s.log.Error("export messages failed", zap.Error(err))
	}
}

func (s *Server) handleMessageGet(w http.ResponseWriter, r *http.Request) {
	msg, err := s.messages.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

func (s *Server) handleMessageDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.messages.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Helpers ---

// generate never fails: a panic inside the engine yields the fallback content.
func (s *Server) generate(req generator.Request) generator.Content {
	var content generator.Content
	if err := s.guard(func() { content = s.gen.Generate(req) }); err != nil {
		s.log.Error("generation failed", zap.String("prompt", req.Prompt), zap.Error(err))
		return generator.Fallback(req)
	}
	return content
}

func (s *Server) guard(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("panic: %v", v)
		}
	}()
	fn()
	return nil
}

func (s *Server) withSession(h func(http.ResponseWriter, *http.Request, *generator.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.sessions.get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "session not found")
			return
		}
		h(w, r, sess)
	}
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrPrivate):
		writeError(w, http.StatusConflict, err.Error())
	default:
		s.log.Error("store failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
