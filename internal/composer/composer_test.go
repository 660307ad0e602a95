package composer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/finuxhq/docqa/internal/config"
	"github.com/finuxhq/docqa/internal/llm"
	"github.com/finuxhq/docqa/internal/qlog"
	"github.com/finuxhq/docqa/internal/retriever"
)

type fakeRetriever struct {
	result *retriever.Result
	err    error
}

func (f *fakeRetriever) Retrieve(context.Context, string) (*retriever.Result, error) {
	return f.result, f.err
}

type fakeProvider struct {
	response string
	err      error
	calls    int
	lastReq  llm.CompletionRequest
}

func (f *fakeProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.response}, nil
}

func (f *fakeProvider) Name() string { return "fake" }

type fakeRecorder struct {
	entries []qlog.Entry
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, e qlog.Entry) error {
	f.entries = append(f.entries, e)
	return f.err
}

func TestGroundedDirectAnswer(t *testing.T) {
	ret := &fakeRetriever{result: &retriever.Result{
		Context: "FINUX minimum deposit is $100.",
		Top:     0.8,
	}}
	provider := &fakeProvider{response: "should not be called"}
	c := New(ret, provider, "m", config.AnswerDirect, time.Second)

	answer := c.Answer(context.Background(), Question{Text: "what is the minimum deposit"})
	if !strings.Contains(answer, "$100") {
		t.Errorf("grounded answer missing document fact: %q", answer)
	}
	if provider.calls != 0 {
		t.Errorf("direct mode called the generator %d times", provider.calls)
	}
}

func TestGroundedSynthesizeAnswer(t *testing.T) {
	ret := &fakeRetriever{result: &retriever.Result{
		Context: "FINUX minimum deposit is $100.",
	}}
	provider := &fakeProvider{response: "The minimum deposit is $100."}
	c := New(ret, provider, "m", config.AnswerSynthesize, time.Second)

	answer := c.Answer(context.Background(), Question{Text: "minimum to open?"})
	if !strings.Contains(answer, "$100") {
		t.Errorf("answer = %q", answer)
	}
	if provider.calls != 1 {
		t.Fatalf("generator called %d times, want 1", provider.calls)
	}
	prompt := provider.lastReq.Messages[len(provider.lastReq.Messages)-1].Content
	if !strings.Contains(prompt, "FINUX minimum deposit") {
		t.Errorf("context not passed to generator: %q", prompt)
	}
}

func TestSynthesizeFailureReturnsRawContext(t *testing.T) {
	ret := &fakeRetriever{result: &retriever.Result{
		Context: "Wire transfers settle within one business day.",
	}}
	provider := &fakeProvider{err: errors.New("backend down")}
	c := New(ret, provider, "m", config.AnswerSynthesize, time.Second)

	answer := c.Answer(context.Background(), Question{Text: "how fast are wires"})
	if !strings.Contains(answer, "one business day") {
		t.Errorf("grounded match dropped on generator failure: %q", answer)
	}
}

func TestEmptyCorpusRoutesToFallback(t *testing.T) {
	ret := &fakeRetriever{result: nil}
	provider := &fakeProvider{response: "42"}
	c := New(ret, provider, "m", config.AnswerDirect, time.Second)

	answer := c.Answer(context.Background(), Question{Text: "what is the answer"})
	if answer != "42" {
		t.Errorf("answer = %q, want the generator fallback", answer)
	}
}

func TestIrrelevantQueryDoesNotReturnDocumentText(t *testing.T) {
	// Retriever already gated the weak match out; the composer must not
	// resurrect document text from anywhere.
	ret := &fakeRetriever{result: nil}
	provider := &fakeProvider{response: "That is outside the documentation."}
	c := New(ret, provider, "m", config.AnswerDirect, time.Second)

	answer := c.Answer(context.Background(), Question{Text: "meaning of life"})
	if answer != "That is outside the documentation." {
		t.Errorf("answer = %q", answer)
	}
}

func TestAllFailuresYieldUnavailableMessage(t *testing.T) {
	ret := &fakeRetriever{result: nil}
	provider := &fakeProvider{err: errors.New("unreachable")}
	c := New(ret, provider, "m", config.AnswerDirect, time.Second)

	answer := c.Answer(context.Background(), Question{Text: "anything"})
	if answer != Unavailable {
		t.Errorf("answer = %q, want the fixed unavailability message", answer)
	}
	if answer == "" {
		t.Fatal("answer must never be empty")
	}
}

func TestRetrievalErrorFallsThrough(t *testing.T) {
	ret := &fakeRetriever{err: errors.New("embedding backend unreachable")}
	provider := &fakeProvider{response: "General guidance."}
	c := New(ret, provider, "m", config.AnswerDirect, time.Second)

	answer := c.Answer(context.Background(), Question{Text: "fees?"})
	if answer != "General guidance." {
		t.Errorf("answer = %q, want the fallback answer", answer)
	}
}

func TestIntentDecoratesGroundedOnly(t *testing.T) {
	intro := "Here is what the documentation says about fees:"

	ret := &fakeRetriever{result: &retriever.Result{
		Context: "The annual fee is $100.",
	}}
	c := New(ret, &fakeProvider{}, "m", config.AnswerDirect, time.Second)
	answer := c.Answer(context.Background(), Question{Text: "what is the annual fee?"})
	if !strings.HasPrefix(answer, intro) {
		t.Errorf("grounded answer not decorated: %q", answer)
	}

	ret2 := &fakeRetriever{result: nil}
	provider := &fakeProvider{response: "Fees vary by institution."}
	c2 := New(ret2, provider, "m", config.AnswerDirect, time.Second)
	answer2 := c2.Answer(context.Background(), Question{Text: "what is the annual fee?"})
	if strings.HasPrefix(answer2, intro) {
		t.Errorf("fallback answer must not carry a documentation intro: %q", answer2)
	}
}

func TestAnswerIsRecorded(t *testing.T) {
	ret := &fakeRetriever{result: &retriever.Result{Context: "The annual fee is $100."}}
	rec := &fakeRecorder{}
	c := New(ret, &fakeProvider{}, "m", config.AnswerDirect, time.Second, WithRecorder(rec))

	c.Answer(context.Background(), Question{
		Platform: "telegram",
		UserID:   "42",
		Username: "sam",
		Text:     "what is the fee",
	})

	if len(rec.entries) != 1 {
		t.Fatalf("recorded %d entries, want 1", len(rec.entries))
	}
	e := rec.entries[0]
	if e.Platform != "telegram" || e.UserID != "42" || e.Username != "sam" {
		t.Errorf("origin not recorded: %+v", e)
	}
	if !e.Grounded {
		t.Error("entry should be marked grounded")
	}
	if !strings.Contains(e.Answer, "$100") {
		t.Errorf("answer not recorded: %q", e.Answer)
	}
}

func TestRecorderFailureDoesNotAffectAnswer(t *testing.T) {
	ret := &fakeRetriever{result: &retriever.Result{Context: "Statements are issued monthly."}}
	rec := &fakeRecorder{err: errors.New("db locked")}
	c := New(ret, &fakeProvider{}, "m", config.AnswerDirect, time.Second, WithRecorder(rec))

	answer := c.Answer(context.Background(), Question{Text: "when are statements issued"})
	if !strings.Contains(answer, "monthly") {
		t.Errorf("answer lost to a logging failure: %q", answer)
	}
}

func TestMatchIntent(t *testing.T) {
	intents := DefaultIntents()

	if m := matchIntent(intents, "What is the annual fee?"); m == nil || m.Name != "fees" {
		t.Errorf("fee question matched %v", m)
	}
	if m := matchIntent(intents, "Do you like coffee?"); m != nil {
		t.Errorf("unrelated question matched %v", m)
	}
	// Substrings must not match; "feedback" is not "fee".
	if m := matchIntent(intents, "How do I send feedback"); m != nil {
		t.Errorf("substring matched %v", m)
	}
}
