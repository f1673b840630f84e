// Package sentiment is an in-process, lexicon and rule based polarity scorer
// producing VADER-style neg/neu/pos/compound scores.
package sentiment

import (
	"context"
	"math"
	"strings"
	"unicode"

	"review_analyzer/internal/domain"
)

// Analyzer scores text against a fixed lexicon. It is safe for concurrent use.
type Analyzer struct {
	lexicon map[string]float64
}

// New returns an Analyzer over the built-in lexicon.
func New() *Analyzer { return &Analyzer{lexicon: defaultLexicon} }

// Score implements domain.Scorer. It never fails.
func (a *Analyzer) Score(_ context.Context, text string) (domain.Sentiment, error) {
	return a.PolarityScores(text), nil
}

func (a *Analyzer) PolarityScores(text string) domain.Sentiment {
	words := tokenize(text)
	if len(words) == 0 {
		return domain.Sentiment{"neg": 0, "neu": 0, "pos": 0, "compound": 0}
	}
	capDiff := mixedCaps(words)

	lower := make([]string, len(words))
	for i, w := range words {
		lower[i] = normalizeWord(w)
	}

	vals := make([]float64, len(words))
	for i, w := range lower {
		if _, isBooster := boosters[w]; isBooster {
			continue
		}
		v, ok := a.lexicon[w]
		if !ok {
			continue
		}
		if capDiff && isAllCaps(words[i]) {
			v += math.Copysign(capsIncr, v)
		}
		for j := 1; j <= 3 && i-j >= 0; j++ {
			prev := lower[i-j]
			if _, inLex := a.lexicon[prev]; inLex {
				continue
			}
			if b, ok := boosters[prev]; ok {
				damp := 1.0
				if j == 2 {
					damp = 0.95
				} else if j == 3 {
					damp = 0.9
				}
				v += math.Copysign(b, v) * damp
			}
			if negations[prev] {
				v *= negScalar
			}
		}
		vals[i] = v
	}

	applyBut(lower, vals)

	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	amp := punctuationEmphasis(text)
	if sum > 0 {
		sum += amp
	} else if sum < 0 {
		sum -= amp
	}

	var posSum, negSum float64
	var neu int
	for _, v := range vals {
		switch {
		case v > 0:
			posSum += v + 1
		case v < 0:
			negSum += v - 1
		default:
			neu++
		}
	}
	if posSum > math.Abs(negSum) {
		posSum += amp
	} else if posSum < math.Abs(negSum) {
		negSum -= amp
	}
	total := posSum + math.Abs(negSum) + float64(neu)

	return domain.Sentiment{
		"neg":      round(math.Abs(negSum/total), 3),
		"neu":      round(math.Abs(float64(neu)/total), 3),
		"pos":      round(math.Abs(posSum/total), 3),
		"compound": round(normalize(sum), 4),
	}
}

// applyBut halves sentiment before "but" and boosts it by half after.
func applyBut(words []string, vals []float64) {
	for i, w := range words {
		if w != "but" {
			continue
		}
		for j := range vals {
			switch {
			case j < i:
				vals[j] *= 0.5
			case j > i:
				vals[j] *= 1.5
			}
		}
		return
	}
}

func punctuationEmphasis(text string) float64 {
	excl := strings.Count(text, "!")
	if excl > 4 {
		excl = 4
	}
	amp := float64(excl) * 0.292
	if q := strings.Count(text, "?"); q > 1 {
		if q <= 3 {
			amp += float64(q) * 0.18
		} else {
			amp += 0.96
		}
	}
	return amp
}

func normalize(score float64) float64 {
	n := score / math.Sqrt(score*score+15)
	return math.Max(-1, math.Min(1, n))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func tokenize(text string) []string {
	var out []string
	for _, f := range strings.Fields(text) {
		w := strings.TrimFunc(f, unicode.IsPunct)
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// normalizeWord lowercases w and drops apostrophes so "didn't" matches "didnt".
func normalizeWord(w string) string {
	w = strings.ToLower(w)
	return strings.NewReplacer("'", "", "’", "").Replace(w)
}

func isAllCaps(w string) bool {
	return w == strings.ToUpper(w) && w != strings.ToLower(w)
}

func mixedCaps(words []string) bool {
	caps := 0
	for _, w := range words {
		if isAllCaps(w) {
			caps++
		}
	}
	return caps > 0 && caps < len(words)
}
