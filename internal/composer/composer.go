// Package composer turns a question into the final answer text. It runs a
// three-stage fallback chain: grounded answer from retrieved context, then
// an ungrounded generator answer, then a fixed unavailability message. It
// never returns an empty answer.
package composer

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/finuxhq/docqa/internal/config"
	"github.com/finuxhq/docqa/internal/llm"
	"github.com/finuxhq/docqa/internal/qlog"
	"github.com/finuxhq/docqa/internal/retriever"
)

// Unavailable is the last-resort answer when both the corpus and the
// generator have failed the request.
const Unavailable = "Sorry, the service is temporarily unavailable. Please try again later."

// ContextRetriever reports relevant corpus context for a question, or nil
// when there is none.
type ContextRetriever interface {
	Retrieve(ctx context.Context, question string) (*retriever.Result, error)
}

// Question is one incoming user question with its origin.
type Question struct {
	Platform string
	UserID   string
	Username string
	Text     string
}

// Composer composes answers from retrieval results and the LLM provider.
type Composer struct {
	retriever ContextRetriever
	provider  llm.Provider
	model     string
	mode      config.AnswerMode
	timeout   time.Duration
	recorder  qlog.Recorder
	intents   []Intent
}

type Option func(*Composer)

// WithRecorder attaches a question log sink. Recording failures are logged
// and swallowed; they never affect the answer.
func WithRecorder(r qlog.Recorder) Option {
	return func(c *Composer) { c.recorder = r }
}

// WithIntents replaces the default intent table.
func WithIntents(intents []Intent) Option {
	return func(c *Composer) { c.intents = intents }
}

func New(ret ContextRetriever, provider llm.Provider, model string, mode config.AnswerMode, timeout time.Duration, opts ...Option) *Composer {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	c := &Composer{
		retriever: ret,
		provider:  provider,
		model:     model,
		mode:      mode,
		timeout:   timeout,
		intents:   DefaultIntents(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Answer runs the fallback chain for one question and returns the answer
// text. The result is never empty. Retrieval and generation failures are
// absorbed into the chain; only the process-level log sees them.
func (c *Composer) Answer(ctx context.Context, q Question) string {
	question := strings.TrimSpace(q.Text)

	res, err := c.retriever.Retrieve(ctx, question)
	if err != nil {
		// A failed search is indistinguishable from an empty one for the
		// caller; the request falls through to the ungrounded path.
		log.Printf("retrieval failed, falling back: %v", err)
		res = nil
	}

	var answer string
	grounded := res != nil
	if grounded {
		answer = c.grounded(ctx, question, res.Context)
	} else {
		answer = c.fallback(ctx, question)
	}
	if answer == "" {
		answer = Unavailable
	}

	c.record(ctx, q, question, answer, grounded)
	return answer
}

// grounded produces the answer for a question with relevant context. In
// synthesize mode a generator failure degrades to the raw context rather
// than discarding a known-good match.
func (c *Composer) grounded(ctx context.Context, question, contextText string) string {
	answer := contextText
	if c.mode == config.AnswerSynthesize {
		if phrased, err := c.generate(ctx, groundedMessages(question, contextText)); err != nil {
			log.Printf("grounded generation failed, returning raw context: %v", err)
		} else if phrased != "" {
			answer = phrased
		}
	}

	if intent := matchIntent(c.intents, question); intent != nil {
		answer = intent.Intro + "\n\n" + answer
	}
	return answer
}

func (c *Composer) fallback(ctx context.Context, question string) string {
	answer, err := c.generate(ctx, fallbackMessages(question))
	if err != nil {
		log.Printf("fallback generation failed: %v", err)
		return ""
	}
	return answer
}

func (c *Composer) generate(ctx context.Context, messages []llm.Message) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.provider.Complete(genCtx, llm.CompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

func (c *Composer) record(ctx context.Context, q Question, question, answer string, grounded bool) {
	if c.recorder == nil {
		return
	}
	err := c.recorder.Record(ctx, qlog.Entry{
		Platform: q.Platform,
		UserID:   q.UserID,
		Username: q.Username,
		Question: question,
		Answer:   answer,
		Grounded: grounded,
	})
	if err != nil {
		log.Printf("recording question failed: %v", err)
	}
}
