package gate

import (
	"testing"
)

func TestAdmit(t *testing.T) {
	g := New([]string{"aadhaar", "dbt", "scholarship", "बैंक"}, 0.25)

	tests := []struct {
		name      string
		query     string
		bestScore float32
		want      bool
	}{
		{
			name:      "keyword hit with low score",
			query:     "What is Aadhaar seeding?",
			bestScore: 0.01,
			want:      true,
		},
		{
			name:      "keyword hit is case insensitive",
			query:     "tell me about DBT payments",
			bestScore: 0.0,
			want:      true,
		},
		{
			name:      "devanagari keyword hit",
			query:     "मेरा बैंक खाता कैसे जोड़ें",
			bestScore: 0.0,
			want:      true,
		},
		{
			name:      "no keyword but score clears threshold",
			query:     "why is my money not arriving",
			bestScore: 0.30,
			want:      true,
		},
		{
			name:      "score exactly at threshold admits",
			query:     "payment delay",
			bestScore: 0.25,
			want:      true,
		},
		{
			name:      "no keyword and score below threshold",
			query:     "what is the weather today",
			bestScore: 0.24,
			want:      false,
		},
		{
			name:      "substring match inside a word still counts",
			query:     "aadhaarcard",
			bestScore: 0.0,
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Admit(tt.query, tt.bestScore); got != tt.want {
				t.Errorf("Admit(%q, %v) = %v, want %v", tt.query, tt.bestScore, got, tt.want)
			}
		})
	}
}

func TestKeywordMatchEmptyList(t *testing.T) {
	g := New(nil, 0.25)
	if g.KeywordMatch("anything about aadhaar") {
		t.Error("KeywordMatch() = true with no keywords configured")
	}
	if !g.Admit("anything", 0.9) {
		t.Error("Admit() = false, similarity alone should admit")
	}
}

func TestThreshold(t *testing.T) {
	g := New(nil, 0.4)
	if g.Threshold() != 0.4 {
		t.Errorf("Threshold() = %v, want 0.4", g.Threshold())
	}
}
