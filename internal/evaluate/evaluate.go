// Package evaluate scores a speech-to-text transcript against an expected
// phrase by word-level containment comparison.
package evaluate

import (
	"math"
	"strings"
)

// WordEvaluation is the correctness judgment for a single expected word.
type WordEvaluation struct {
	Word    string `json:"word"`
	Correct bool   `json:"correct"`
}

// Result is the full outcome of evaluating a transcript against an expected
// phrase. WordEvaluations follows the word order of the expected phrase.
type Result struct {
	TranscribedText string           `json:"transcribed_text"`
	ExpectedPhrase  string           `json:"expected_phrase"`
	WordEvaluations []WordEvaluation `json:"word_evaluations"`
	OverallScore    float64          `json:"overall_score"`
	AllCorrect      bool             `json:"all_correct"`
}

// Words compares the transcribed text against the expected phrase and returns
// one WordEvaluation per word of the normalized expected phrase, in order.
//
// Matching is containment-based: an expected word is correct if it appears
// anywhere in the transcribed word set. Word order in the transcription does
// not matter, extra or repeated transcribed words are not penalized, and a
// word transcribed once satisfies any number of identical expected words.
// This is deliberately not an alignment or edit-distance comparison.
func Words(transcribed, expected string) []WordEvaluation {
	transcribedWords := strings.Fields(Normalize(transcribed))
	expectedWords := strings.Fields(Normalize(expected))

	seen := make(map[string]bool, len(transcribedWords))
	for _, w := range transcribedWords {
		seen[w] = true
	}

	evals := make([]WordEvaluation, 0, len(expectedWords))
	for _, w := range expectedWords {
		evals = append(evals, WordEvaluation{Word: w, Correct: seen[w]})
	}
	return evals
}

// Score returns the percentage of correct words, rounded to one decimal
// place. An empty evaluation list scores 0.
func Score(evals []WordEvaluation) float64 {
	if len(evals) == 0 {
		return 0
	}
	correct := 0
	for _, e := range evals {
		if e.Correct {
			correct++
		}
	}
	score := float64(correct) / float64(len(evals)) * 100
	return math.Round(score*10) / 10
}

// AllCorrect reports whether every word was judged correct. Vacuously true
// for an empty list.
func AllCorrect(evals []WordEvaluation) bool {
	for _, e := range evals {
		if !e.Correct {
			return false
		}
	}
	return true
}

// Evaluate builds a complete Result for a transcript and expected phrase.
func Evaluate(transcribed, expected string) *Result {
	evals := Words(transcribed, expected)
	return &Result{
		TranscribedText: transcribed,
		ExpectedPhrase:  expected,
		WordEvaluations: evals,
		OverallScore:    Score(evals),
		AllCorrect:      AllCorrect(evals),
	}
}
