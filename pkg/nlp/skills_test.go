package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "c++ and c# rest api", Normalize("  C++, and C#:  REST-API "))
}

func TestUniqueSkills(t *testing.T) {
	assert.Equal(t, []string{"SQL", "Go"}, UniqueSkills([]string{"SQL", " sql ", "", "Go", "go"}))
}

func TestCoverage(t *testing.T) {
	text := "Five years of Golang and PostgreSQL; some REST APIs."
	matched, pct := Coverage([]string{"Go", "Postgres", "Kubernetes", "REST"}, text)
	assert.Equal(t, []string{"Go", "Postgres", "REST"}, matched)
	assert.Equal(t, 75, pct)

	_, pct = Coverage(nil, text)
	assert.Equal(t, 0, pct)
}

func TestContainsPhrase_WholeWords(t *testing.T) {
	assert.True(t, ContainsPhrase("built a rest api today", "rest api"))
	assert.False(t, ContainsPhrase("built rest apis", "rest api"))
	assert.False(t, ContainsPhrase("anything", ""))
}
