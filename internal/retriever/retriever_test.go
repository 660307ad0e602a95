package retriever

import (
	"context"
	"strings"
	"testing"

	"github.com/finuxhq/docqa/internal/vectordb"
)

// fakeStore returns a canned result list regardless of the query, so tests
// control similarities exactly.
type fakeStore struct {
	results []vectordb.SearchResult
	err     error
}

func (s *fakeStore) AddDocuments(context.Context, []vectordb.Document) error { return nil }

func (s *fakeStore) Search(_ context.Context, _ string, limit int, _ *vectordb.SearchFilter) ([]vectordb.SearchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.results) {
		return s.results[:limit], nil
	}
	return s.results, nil
}

func (s *fakeStore) Persist(context.Context, string) error { return nil }
func (s *fakeStore) Load(context.Context, string) error    { return nil }
func (s *fakeStore) Count() int                            { return len(s.results) }

func hit(content string, sim float32) vectordb.SearchResult {
	return vectordb.SearchResult{
		Document:   vectordb.Document{Content: content},
		Similarity: sim,
	}
}

func TestRetrieveReturnsRelevantContext(t *testing.T) {
	store := &fakeStore{results: []vectordb.SearchResult{
		hit("The annual fee for the premium card is $100.", 0.82),
		hit("Fees are waived for the first year.", 0.61),
	}}
	r := New(store, 3, 0.25, 1400)

	res, err := r.Retrieve(context.Background(), "What is the annual fee?")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if res == nil {
		t.Fatal("expected a result above the threshold")
	}
	if !strings.Contains(res.Context, "$100") {
		t.Errorf("context missing fee: %q", res.Context)
	}
	if !strings.Contains(res.Context, "waived") {
		t.Errorf("second passage missing: %q", res.Context)
	}
	if res.Top != 0.82 {
		t.Errorf("Top = %v, want 0.82", res.Top)
	}
}

func TestRetrieveRejectsBelowThreshold(t *testing.T) {
	store := &fakeStore{results: []vectordb.SearchResult{
		hit("Branches are open 9am to 5pm.", 0.12),
	}}
	r := New(store, 3, 0.25, 1400)

	res, err := r.Retrieve(context.Background(), "What is the meaning of life?")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if res != nil {
		t.Fatalf("expected nil result below threshold, got %q", res.Context)
	}
}

func TestRetrieveAcceptsExactThreshold(t *testing.T) {
	store := &fakeStore{results: []vectordb.SearchResult{
		hit("Wire transfers settle within one business day.", 0.25),
	}}
	r := New(store, 3, 0.25, 1400)

	res, err := r.Retrieve(context.Background(), "How long do wire transfers take?")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if res == nil {
		t.Fatal("a hit exactly at the threshold must be accepted")
	}
}

func TestRetrieveEmptyIndex(t *testing.T) {
	r := New(&fakeStore{}, 3, 0.25, 1400)

	res, err := r.Retrieve(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if res != nil {
		t.Fatal("empty index must yield nil result")
	}
}

func TestRetrieveBlankQuestion(t *testing.T) {
	store := &fakeStore{results: []vectordb.SearchResult{hit("text", 0.9)}}
	r := New(store, 3, 0.25, 1400)

	res, err := r.Retrieve(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if res != nil {
		t.Fatal("blank question must yield nil result")
	}
}

func TestRetrieveDeduplicatesPassages(t *testing.T) {
	store := &fakeStore{results: []vectordb.SearchResult{
		hit("Overdraft protection is free for premium accounts.", 0.8),
		hit("Overdraft protection is free for premium accounts.", 0.79),
	}}
	r := New(store, 3, 0.25, 1400)

	res, err := r.Retrieve(context.Background(), "overdraft")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if got := strings.Count(res.Context, "Overdraft protection"); got != 1 {
		t.Errorf("passage repeated %d times in context", got)
	}
}

func TestRetrieveStripsPageMarkers(t *testing.T) {
	store := &fakeStore{results: []vectordb.SearchResult{
		hit("[Page 3] Statements are issued monthly.", 0.7),
	}}
	r := New(store, 3, 0.25, 1400)

	res, err := r.Retrieve(context.Background(), "statements")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if strings.Contains(res.Context, "[Page") {
		t.Errorf("page marker leaked into context: %q", res.Context)
	}
	if !strings.Contains(res.Context, "Statements are issued monthly.") {
		t.Errorf("content lost during cleanup: %q", res.Context)
	}
}

func TestRetrieveTruncatesContext(t *testing.T) {
	long := strings.Repeat("Interest accrues daily on outstanding balances. ", 40)
	store := &fakeStore{results: []vectordb.SearchResult{
		hit(long, 0.9),
		hit("Late fees apply after a 10 day grace period.", 0.8),
	}}
	r := New(store, 3, 0.25, 200)

	res, err := r.Retrieve(context.Background(), "interest")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(res.Context) > 200 {
		t.Errorf("context length %d exceeds cap", len(res.Context))
	}
	if res.Context == "" {
		t.Error("truncation left no context")
	}
}

func TestRetrieveOnlyMarkersYieldsNil(t *testing.T) {
	store := &fakeStore{results: []vectordb.SearchResult{
		hit("[Page 1] [Page 2]", 0.9),
	}}
	r := New(store, 3, 0.25, 1400)

	res, err := r.Retrieve(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if res != nil {
		t.Fatal("marker-only passages must not produce a result")
	}
}
