// Package quote decides which lyric line of a song is worth sharing:
// a stateful per-song shareability filter, a pure classic-score evaluator
// driven by vocabulary data, and a selector with deterministic tie-breaks.
package quote

// Category names one vocabulary group contributing to the classic score.
type Category string

const (
	CategoryPhilosophical Category = "philosophical"
	CategoryEmotional     Category = "emotional"
	CategoryImagery       Category = "imagery"
	CategoryTime          Category = "time"
)

// CategoryTerms is one weighted vocabulary group. A line scores Weight once
// per distinct matched term, regardless of how often the term repeats.
type CategoryTerms struct {
	Category Category
	Weight   float64
	Terms    []string
}

// Vocabulary is the scoring configuration: ordered term groups plus the
// structural and length constants. It is data, not code, so scoring rules
// can be swapped and tested in isolation.
type Vocabulary struct {
	Groups []CategoryTerms

	// ClauseBonus applies when the line contains clause-break punctuation.
	ClauseBonus float64
	// EchoBonus applies when the first and last word (or character) match.
	EchoBonus float64
	// LengthPeak scales the bell-shaped length-fit bonus.
	LengthPeak float64
}

// DefaultVocabulary is the fixed production configuration: classic Chinese
// pop expression patterns, weighted philosophical > emotional > imagery >
// time expression.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Groups: []CategoryTerms{
			{
				Category: CategoryPhilosophical,
				Weight:   1.2,
				Terms: []string{
					"一生", "永远", "瞬间", "时光", "岁月", "青春", "年华",
					"人生", "命运", "缘分", "爱情", "友情", "亲情",
				},
			},
			{
				Category: CategoryEmotional,
				Weight:   1.0,
				Terms: []string{
					"爱", "情", "心", "泪", "笑", "痛", "伤", "思念", "回忆",
					"孤独", "寂寞", "温暖", "幸福", "快乐", "悲伤",
				},
			},
			{
				Category: CategoryImagery,
				Weight:   0.8,
				Terms: []string{
					"月亮", "星星", "太阳", "风", "雨", "雪", "云", "天空",
					"大海", "山", "花", "树", "草", "远方", "天涯",
				},
			},
			{
				Category: CategoryTime,
				Weight:   0.5,
				Terms: []string{
					"昨天", "今天", "明天", "从前", "以后", "现在",
				},
			},
		},
		ClauseBonus: 0.5,
		EchoBonus:   0.5,
		LengthPeak:  1.0,
	}
}

var defaultVocab = DefaultVocabulary()
