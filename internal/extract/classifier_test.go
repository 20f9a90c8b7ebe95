package extract

import "testing"

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name string
		line string
		want Category
	}{
		{"blank line", "", CategoryBoilerplate},
		{"whitespace only", "   \t  ", CategoryBoilerplate},
		{"pure punctuation", "});", CategoryBoilerplate},
		{"lone closing brace", "}", CategoryBoilerplate},
		{"go import", `import "fmt"`, CategoryBoilerplate},
		{"go import block open", "import (", CategoryBoilerplate},
		{"python from import", "from collections import defaultdict", CategoryBoilerplate},
		{"js export", "export default function App() {", CategoryBoilerplate},
		{"node module exports", "module.exports = { parse, render };", CategoryBoilerplate},
		{"go package decl", "package extract", CategoryBoilerplate},
		{"csharp namespace", "namespace Acme.Billing", CategoryBoilerplate},
		{"csharp using", "using System.Collections.Generic;", CategoryBoilerplate},
		{"c include", "#include <stdio.h>", CategoryBoilerplate},
		{"ruby require", "require 'json'", CategoryBoilerplate},
		{"react state hook", "const [count, setCount] = useState(0)", CategoryBoilerplate},
		{"use strict", "'use strict'", CategoryBoilerplate},

		{"long line comment", "// walk the tree twice to avoid aliasing the parent", CategoryComment},
		{"long hash comment", "# retry with exponential backoff on transient errors", CategoryComment},
		{"long block comment", "/* the cache key must include the tenant id */", CategoryComment},
		{"doc comment continuation", "* Returns the number of bytes consumed from input.", CategoryComment},
		{"python docstring", `"""Validate the payload before enqueueing it."""`, CategoryComment},
		{"sql comment", "-- join on the latest snapshot per account", CategoryComment},
		{"short comment is noise", "// fix", CategoryNoise},
		{"short hash comment is noise", "# TODO", CategoryNoise},

		{"short code is noise", "x = 1", CategoryNoise},
		{"bare else", "else", CategoryNoise},
		{"brace-wrapped else", "} else {", CategoryNoise},
		{"shell fi", "fi", CategoryNoise},
		{"shell done", "done", CategoryNoise},
		{"ruby end", "end", CategoryNoise},

		{"substantive assignment", "total := basePrice * quantity", CategoryCode},
		{"substantive call", "    results = append(results, parseRow(row))", CategoryCode},
		{"substantive condition", "if account.Balance < minimumBalance {", CategoryCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestClassifier_CommentLengthGate(t *testing.T) {
	c := NewClassifier()

	// Exactly 15 trimmed characters must degrade to noise; 16 passes.
	fifteen := "// twelve ch..."
	if len(fifteen) != 15 {
		t.Fatalf("fixture length = %d, want 15", len(fifteen))
	}
	if got := c.Classify(fifteen); got != CategoryNoise {
		t.Errorf("15-char comment = %v, want noise", got)
	}

	sixteen := "// thirteen ch.."
	if len(sixteen) != 16 {
		t.Fatalf("fixture length = %d, want 16", len(sixteen))
	}
	if got := c.Classify(sixteen); got != CategoryComment {
		t.Errorf("16-char comment = %v, want comment", got)
	}
}
