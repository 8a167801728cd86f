package evaluate

import "testing"

func TestWords_AllContained(t *testing.T) {
	evals := Words("olá como vai você", "Olá, como vai?")
	if len(evals) != 3 {
		t.Fatalf("len(evals) = %d, want 3", len(evals))
	}
	want := []string{"olá", "como", "vai"}
	for i, e := range evals {
		if e.Word != want[i] {
			t.Errorf("evals[%d].Word = %q, want %q", i, e.Word, want[i])
		}
		if !e.Correct {
			t.Errorf("evals[%d].Correct = false, want true", i)
		}
	}
}

func TestWords_OrderIndependent(t *testing.T) {
	evals := Words("dia bom", "Bom dia")
	if len(evals) != 2 {
		t.Fatalf("len(evals) = %d, want 2", len(evals))
	}
	for i, e := range evals {
		if !e.Correct {
			t.Errorf("evals[%d] (%q) incorrect despite word present out of order", i, e.Word)
		}
	}
}

func TestWords_DuplicatesNotConsumed(t *testing.T) {
	evals := Words("a", "a a")
	if len(evals) != 2 {
		t.Fatalf("len(evals) = %d, want 2", len(evals))
	}
	for i, e := range evals {
		if !e.Correct {
			t.Errorf("evals[%d] incorrect; one transcribed token should satisfy both", i)
		}
	}
}

func TestWords_ExtraTranscribedWordsIgnored(t *testing.T) {
	evals := Words("eu acho que bom dia sim", "Bom dia")
	for i, e := range evals {
		if !e.Correct {
			t.Errorf("evals[%d] (%q) incorrect; extra words must not penalize", i, e.Word)
		}
	}
}

func TestWords_MissingWord(t *testing.T) {
	evals := Words("bom", "Bom dia")
	if len(evals) != 2 {
		t.Fatalf("len(evals) = %d, want 2", len(evals))
	}
	if !evals[0].Correct {
		t.Error("evals[0] (bom) = incorrect, want correct")
	}
	if evals[1].Correct {
		t.Error("evals[1] (dia) = correct, want incorrect")
	}
}

func TestWords_EmptyExpected(t *testing.T) {
	evals := Words("bom dia", "")
	if len(evals) != 0 {
		t.Fatalf("len(evals) = %d, want 0", len(evals))
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		evals []WordEvaluation
		want  float64
	}{
		{"empty", nil, 0},
		{"all_correct", []WordEvaluation{{"a", true}, {"b", true}}, 100},
		{"none_correct", []WordEvaluation{{"a", false}}, 0},
		{"two_of_three_rounds_to_66_7", []WordEvaluation{{"a", true}, {"b", true}, {"c", false}}, 66.7},
		{"one_of_three_rounds_to_33_3", []WordEvaluation{{"a", true}, {"b", false}, {"c", false}}, 33.3},
		{"half", []WordEvaluation{{"a", true}, {"b", false}}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.evals); got != tt.want {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllCorrect(t *testing.T) {
	if !AllCorrect(nil) {
		t.Error("AllCorrect(nil) = false, want vacuously true")
	}
	if !AllCorrect([]WordEvaluation{{"a", true}}) {
		t.Error("AllCorrect = false for all-correct input")
	}
	if AllCorrect([]WordEvaluation{{"a", true}, {"b", false}}) {
		t.Error("AllCorrect = true despite an incorrect word")
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("perfect", func(t *testing.T) {
		r := Evaluate("Bom dia!", "bom dia")
		if r.TranscribedText != "Bom dia!" {
			t.Errorf("TranscribedText = %q", r.TranscribedText)
		}
		if r.ExpectedPhrase != "bom dia" {
			t.Errorf("ExpectedPhrase = %q", r.ExpectedPhrase)
		}
		if r.OverallScore != 100 {
			t.Errorf("OverallScore = %v, want 100", r.OverallScore)
		}
		if !r.AllCorrect {
			t.Error("AllCorrect = false, want true")
		}
	})

	t.Run("partial", func(t *testing.T) {
		r := Evaluate("olá como", "Olá, como vai?")
		if r.OverallScore != 66.7 {
			t.Errorf("OverallScore = %v, want 66.7", r.OverallScore)
		}
		if r.AllCorrect {
			t.Error("AllCorrect = true, want false")
		}
	})

	t.Run("empty_expected", func(t *testing.T) {
		r := Evaluate("bom dia", "")
		if len(r.WordEvaluations) != 0 {
			t.Errorf("len(WordEvaluations) = %d, want 0", len(r.WordEvaluations))
		}
		if r.OverallScore != 0 {
			t.Errorf("OverallScore = %v, want 0", r.OverallScore)
		}
		if !r.AllCorrect {
			t.Error("AllCorrect = false, want vacuously true")
		}
	})
}
