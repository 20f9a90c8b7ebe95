package extract

// BlockKind distinguishes finished code blocks from comment blocks.
type BlockKind int

const (
	// KindCode marks a block of contiguous substantive code lines.
	KindCode BlockKind = iota
	// KindComment marks a block of contiguous comment lines with optional
	// preceding code context.
	KindComment
)

// Block is a maximal contiguous run of accepted lines emitted by the
// Accumulator. Context is populated only for comment blocks.
type Block struct {
	Kind    BlockKind
	Lines   []string
	Context []string
}

// contextWindowSize is the number of recent code lines retained for pairing
// with comment blocks.
const contextWindowSize = 5

// Accumulator is the explicit state machine that groups classified added
// lines into blocks. Lines must be observed in file order; hunk restarts,
// context lines, and deletions are boundaries. Boilerplate lines must not be
// fed to the accumulator at all: they neither extend nor close a block.
type Accumulator struct {
	code    []string
	comment []string
	context []string
}

// NewAccumulator returns an accumulator with empty buffers.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Observe feeds one classified line and returns any blocks it finished.
// At most one block is returned per call: a comment block completes when the
// first substantive code line after it arrives, and a too-short code buffer
// is silently discarded on a noise line.
func (a *Accumulator) Observe(line string, cat Category) []Block {
	switch cat {
	case CategoryComment:
		a.comment = append(a.comment, line)
		return nil

	case CategoryCode:
		// A code line terminates any pending comment block. The context is
		// captured before this line enters the window, so it holds only code
		// that precedes the comment.
		blocks := a.flushComment()
		a.code = append(a.code, line)
		a.context = append(a.context, line)
		if len(a.context) > contextWindowSize {
			a.context = a.context[1:]
		}
		return blocks

	case CategoryNoise:
		return a.Boundary()

	case CategoryBoilerplate:
		// Callers skip boilerplate before reaching the accumulator; treat a
		// stray one the same way.
		return nil
	}

	return nil
}

// Boundary signals a hunk restart, context line, or deletion. It closes an
// in-progress code block if it is long enough to be a quiz item, and
// discards it otherwise. The comment buffer survives boundaries.
func (a *Accumulator) Boundary() []Block {
	blocks := a.flushCode()
	return blocks
}

// Finish signals the end of a file section and flushes both buffers.
func (a *Accumulator) Finish() []Block {
	blocks := a.flushCode()
	blocks = append(blocks, a.flushComment()...)
	a.context = nil
	return blocks
}

func (a *Accumulator) flushCode() []Block {
	if len(a.code) == 0 {
		return nil
	}
	buf := a.code
	a.code = nil
	if len(buf) < MinSnippetLines {
		// Too short to be a meaningful quiz item.
		return nil
	}
	return []Block{{Kind: KindCode, Lines: buf}}
}

func (a *Accumulator) flushComment() []Block {
	if len(a.comment) == 0 {
		return nil
	}
	buf := a.comment
	a.comment = nil

	ctx := a.context
	if len(ctx) > maxCommentContextLines {
		ctx = ctx[len(ctx)-maxCommentContextLines:]
	}
	// Copy: the ring keeps mutating after this block is emitted.
	context := append([]string(nil), ctx...)

	return []Block{{Kind: KindComment, Lines: buf, Context: context}}
}
