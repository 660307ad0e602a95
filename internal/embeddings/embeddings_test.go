package embeddings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaEmbed(t *testing.T) {
	var requested []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/embed" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req ollamaEmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		requested = append(requested, req.Input)
		json.NewEncoder(w).Encode(ollamaEmbedResponse{
			Embeddings: [][]float32{{0.1, 0.2, 0.3}},
		})
	}))
	defer srv.Close()

	e := NewOllamaEmbedder("nomic-embed-text", 3, srv.URL)
	vectors, err := e.Embed(context.Background(), []string{
		"The annual fee is $100.",
		"Branches open at 9am.",
	})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(vectors))
	}
	if len(vectors[0]) != e.Dimensions() {
		t.Errorf("vector length %d, want %d", len(vectors[0]), e.Dimensions())
	}
	if len(requested) != 2 || requested[0] != "The annual fee is $100." {
		t.Errorf("passages not sent in order: %v", requested)
	}
}

func TestOllamaEmbedEmptyInput(t *testing.T) {
	e := NewOllamaEmbedder("nomic-embed-text", 3, "http://unused")
	vectors, err := e.Embed(context.Background(), nil)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if vectors != nil {
		t.Errorf("got %v, want nil", vectors)
	}
}

func TestGoogleEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gemini-embedding-001:embedContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Error("API key not passed")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"embedding": map[string]any{
				"values": []float32{0.4, 0.5, 0.6},
			},
		})
	}))
	defer srv.Close()

	e := NewGoogleEmbedder("test-key", ModelGeminiEmbedding001)
	e.baseURL = srv.URL

	vectors, err := e.Embed(context.Background(), []string{"Wire transfers settle within one business day."})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vectors) != 1 || len(vectors[0]) != 3 {
		t.Fatalf("unexpected vectors %v", vectors)
	}
}

func TestGoogleEmbedRejectsEmptyEmbedding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"embedding": map[string]any{}})
	}))
	defer srv.Close()

	e := NewGoogleEmbedder("test-key", ModelGeminiEmbedding001)
	e.baseURL = srv.URL

	if _, err := e.Embed(context.Background(), []string{"anything"}); err == nil {
		t.Fatal("expected error for empty embedding")
	}
}
