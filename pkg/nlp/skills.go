// Package nlp holds the word-level text helpers used to compare job skills with CV text.
package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}+#]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// aliases maps a normalized skill to the spellings that count as the same skill.
var aliases = map[string][]string{
	"postgres":   {"postgresql"},
	"postgresql": {"postgres"},
	"k8s":        {"kubernetes"},
	"kubernetes": {"k8s"},
	"golang":     {"go"},
	"go":         {"golang"},
	"js":         {"javascript"},
	"javascript": {"js"},
	"ts":         {"typescript"},
	"typescript": {"ts"},
	"rest":       {"rest api"},
	"rest api":   {"rest"},
	"ci cd":      {"cicd"},
	"cicd":       {"ci cd"},
	"mongo":      {"mongodb"},
	"mongodb":    {"mongo"},
}

// Normalize lowercases s and collapses everything that is not a letter,
// digit, '+' or '#' into single spaces.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Variants returns the normalized skill followed by its aliases.
func Variants(skill string) []string {
	base := Normalize(skill)
	if base == "" {
		return nil
	}
	return append([]string{base}, aliases[base]...)
}

// UniqueSkills drops blank and duplicate skills, comparing normalized forms
// and keeping the first spelling seen.
func UniqueSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := Normalize(s)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

// ContainsPhrase reports whether the normalized phrase occurs in the
// normalized text as whole words.
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	return strings.Contains(" "+normalizedText+" ", " "+normalizedPhrase+" ")
}

// Coverage returns the skills found in text and the found share in percent.
// An empty skill list yields 0.
func Coverage(skills []string, text string) (matched []string, percent int) {
	if len(skills) == 0 {
		return nil, 0
	}
	norm := Normalize(text)
	for _, s := range skills {
		for _, v := range Variants(s) {
			if ContainsPhrase(norm, v) {
				matched = append(matched, s)
				break
			}
		}
	}
	return matched, len(matched) * 100 / len(skills)
}
