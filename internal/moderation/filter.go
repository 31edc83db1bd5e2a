// Package moderation wraps the profanity filter. The relay treats it as a
// best-effort text transform: a nil or failing filter passes text through.
package moderation

import (
	goaway "github.com/TwiN/go-away"
)

type Filter struct {
	detector *goaway.ProfanityDetector
}

func NewFilter() *Filter {
	return &Filter{detector: goaway.NewProfanityDetector()}
}

// Clean censors profane words in text. Safe to call on a nil Filter.
func (f *Filter) Clean(text string) string {
	if f == nil || f.detector == nil {
		return text
	}
	return f.detector.Censor(text)
}
