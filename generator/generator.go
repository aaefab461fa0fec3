package generator

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Generator runs analyze -> template -> pipeline -> metrics. It is safe for
// concurrent use; the only shared state is the random source.
type Generator struct {
	rand     Rand
	log      *zap.Logger
	strategy TweakStrategy
	now      func() time.Time
}

type Option func(*Generator)

// WithRand injects the source used to pick filler sentences.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rand = r }
}

// WithSeed seeds a private math/rand source. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rand = rand.New(rand.NewSource(seed))
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

func WithTweakStrategy(s TweakStrategy) Option {
	return func(g *Generator) { g.strategy = s }
}

// WithClock overrides the timestamps recorded on session turns.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func New(opts ...Option) *Generator {
	g := &Generator{
		log:      zap.NewNop(),
		strategy: StrategyMutate,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rand == nil {
		g.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.rand = &lockedRand{r: g.rand}
	return g
}

// Strategy is the configured tweak strategy.
func (g *Generator) Strategy() TweakStrategy { return g.strategy }

// Generate is total: every request, however malformed, yields content.
func (g *Generator) Generate(req Request) Content {
	signals := Analyze(req.Prompt)
	signals.applyOverrides(req)

	rendered := Render(req, signals)
	name := RecipientName(req.Format, signals)
	g.log.Debug("template selected",
		zap.String("template", rendered.TemplateID),
		zap.String("occasion", signals.Occasion),
		zap.String("relationship", signals.Relationship),
		zap.Strings("names", signals.Names),
	)

	text := RunPipeline(rendered.Body, StageContext{
		Request: req,
		Signals: signals,
		Name:    name,
		Rand:    g.rand,
	}, Pipeline)
	if req.RealTalk {
		text = RealTalk(text)
	}

	content := PostProcess(text, req)
	content.Template = rendered.TemplateID
	content.Signals = signals
	if req.Format.emailLike() {
		content.SubjectLine = rendered.Subject
	}
	g.log.Debug("content generated",
		zap.Int("words", content.WordCount),
		zap.Int("target", TargetWords(req.Duration)),
		zap.String("estimated", content.EstimatedDuration),
	)
	return content
}

// Tweak applies one text-mutating tweak to text generated for req.
func (g *Generator) Tweak(text string, kind TweakKind, req Request) string {
	signals := Analyze(req.Prompt)
	signals.applyOverrides(req)
	return ApplyTweak(text, kind, TweakContext{
		Name: RecipientName(req.Format, signals),
		Rand: g.rand,
	})
}

type lockedRand struct {
	mu sync.Mutex
	r  Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
