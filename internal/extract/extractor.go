package extract

import (
	"math/rand"

	"github.com/codeamnesia/codeamnesia/internal/identity"
)

// Change identifies the historical change a diff blob came from.
type Change struct {
	ID     string
	Author identity.Identity
	Self   bool
}

// Extractor runs the full per-change pipeline: segment the diff, classify
// added lines, accumulate blocks, window code blocks into snippets.
type Extractor struct {
	segmenter  *Segmenter
	classifier *Classifier
	windower   *Windower
}

// NewExtractor builds an extractor. The random source drives snippet window
// offsets; inject a seeded one for reproducible runs.
func NewExtractor(rng *rand.Rand) *Extractor {
	return &Extractor{
		segmenter:  NewSegmenter(),
		classifier: NewClassifier(),
		windower:   NewWindower(rng),
	}
}

// Extract turns one change's diff blob into code and comment fragments.
func (e *Extractor) Extract(diff string, change Change) ([]CodeFragment, []CommentFragment) {
	var codeFragments []CodeFragment
	var commentFragments []CommentFragment

	for _, section := range e.segmenter.Segment(diff) {
		acc := NewAccumulator()

		emit := func(blocks []Block) {
			for _, block := range blocks {
				switch block.Kind {
				case KindCode:
					if frag, ok := e.codeFragment(section, block, change); ok {
						codeFragments = append(codeFragments, frag)
					}
				case KindComment:
					if frag, ok := commentFragment(section, block, change); ok {
						commentFragments = append(commentFragments, frag)
					}
				}
			}
		}

		for _, ev := range section.Events {
			switch ev.Kind {
			case EventAdded:
				cat := e.classifier.Classify(ev.Text)
				if cat == CategoryBoilerplate {
					// Discarded entirely: contributes to no block, breaks none.
					continue
				}
				emit(acc.Observe(ev.Text, cat))
			case EventBoundary:
				emit(acc.Boundary())
			}
		}
		emit(acc.Finish())
	}

	return codeFragments, commentFragments
}

func (e *Extractor) codeFragment(section FileSection, block Block, change Change) (CodeFragment, bool) {
	lines := e.windower.Window(block.Lines)
	if len(lines) == 0 {
		return CodeFragment{}, false
	}

	return CodeFragment{
		FilePath:    section.Path,
		Language:    section.Language,
		Lines:       lines,
		Author:      change.Author,
		ChangeID:    change.ID,
		Self:        change.Self,
		Fingerprint: Fingerprint(lines),
	}, true
}

func commentFragment(section FileSection, block Block, change Change) (CommentFragment, bool) {
	if !commentWorthKeeping(block.Lines) {
		return CommentFragment{}, false
	}

	return CommentFragment{
		FilePath:     section.Path,
		Language:     section.Language,
		CommentLines: block.Lines,
		ContextLines: block.Context,
		Author:       change.Author,
		ChangeID:     change.ID,
		Self:         change.Self,
		Fingerprint:  Fingerprint(block.Lines),
	}, true
}
