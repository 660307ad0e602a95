package composer

import "strings"

// Intent pairs a keyword set with an intro line. When a question matches an
// intent, the intro is prepended to the grounded answer. Fallback answers are
// never decorated; an intro would lend them unearned authority.
type Intent struct {
	Name     string
	Keywords []string
	Intro    string
}

// DefaultIntents covers the recurring question categories in the corpus.
func DefaultIntents() []Intent {
	return []Intent{
		{
			Name:     "fees",
			Keywords: []string{"fee", "fees", "charge", "cost"},
			Intro:    "Here is what the documentation says about fees:",
		},
		{
			Name:     "accounts",
			Keywords: []string{"account", "deposit", "balance"},
			Intro:    "From the account documentation:",
		},
		{
			Name:     "transfers",
			Keywords: []string{"transfer", "wire", "payment"},
			Intro:    "From the transfers documentation:",
		},
		{
			Name:     "hours",
			Keywords: []string{"hours", "open", "branch"},
			Intro:    "From the service information:",
		},
	}
}

// matchIntent returns the first intent with a keyword appearing as a word in
// the question, or nil.
func matchIntent(intents []Intent, question string) *Intent {
	words := strings.Fields(strings.ToLower(question))
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		seen[strings.Trim(w, ".,!?;:\"'()")] = true
	}
	for i := range intents {
		for _, kw := range intents[i].Keywords {
			if seen[kw] {
				return &intents[i]
			}
		}
	}
	return nil
}
