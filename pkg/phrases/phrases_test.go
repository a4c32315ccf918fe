package phrases

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPicker_Deterministic(t *testing.T) {
	a, b := Seeded(42), Seeded(42)
	for range 20 {
		assert.Equal(t, a.Between(-1000, 1000), b.Between(-1000, 1000))
		assert.Equal(t, a.Apology(), b.Apology())
	}
}

func TestPicker_Between(t *testing.T) {
	p := Seeded(7)
	seen := map[int]bool{}
	for range 500 {
		n := p.Between(2, 5)
		require.GreaterOrEqual(t, n, 2)
		require.LessOrEqual(t, n, 5)
		seen[n] = true
	}
	assert.Len(t, seen, 4, "every value in range should come up")

	assert.Equal(t, 3, p.Between(3, 3))
	n := p.Between(5, 1)
	assert.True(t, n >= 1 && n <= 5)
}

func TestPicker_One(t *testing.T) {
	p := Seeded(1)
	assert.Equal(t, "", p.One())
	assert.Equal(t, "x", p.One("x"))
}

func TestApology(t *testing.T) {
	p := Seeded(3)
	for range 10 {
		assert.True(t, strings.HasSuffix(p.Apology(), ` Скажите "Повтори", чтобы я повторила.`))
	}
}

func TestReveal(t *testing.T) {
	p := Seeded(9)
	for range 10 {
		assert.Contains(t, p.Reveal("3/4"), "3/4")
	}
}

func TestQuestions(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 вопросов"},
		{1, "1 вопрос"},
		{2, "2 вопроса"},
		{4, "4 вопроса"},
		{5, "5 вопросов"},
		{9, "9 вопросов"},
		{11, "11 вопросов"},
		{21, "21 вопрос"},
		{22, "22 вопроса"},
	}
	for _, tt := range tests {
		if got := Questions(tt.n); got != tt.want {
			t.Errorf("Questions(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFacts(t *testing.T) {
	all := Facts()
	require.Len(t, all, 18)
	for i, f := range all {
		assert.NotEmpty(t, f.Text, "fact %d", i)
		assert.True(t, strings.HasPrefix(f.Source, "http"), "fact %d source %q", i, f.Source)
		assert.NotContains(t, f.Text, "\n", "fact %d should be folded into one line", i)
	}
}

func TestParseFacts_Errors(t *testing.T) {
	_, err := ParseFacts([]byte("not: [a list"))
	assert.Error(t, err)

	_, err = ParseFacts([]byte("[]"))
	assert.Error(t, err)

	_, err = ParseFacts([]byte("- source: https://example.com\n"))
	assert.Error(t, err)
}
