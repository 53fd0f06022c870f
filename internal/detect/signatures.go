package detect

import "github.com/samber/lo"

// Signature is one named failure-pattern rule. Expr fragments are joined
// into a single case-insensitive alternation at matcher construction, so
// each must be a self-contained regular expression.
type Signature struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Expr     string `json:"expr"`
}

// Signatures is the built-in failure signature table. Evaluation is
// match/no-match: any hit wins, so ordering carries no priority.
var Signatures = []Signature{
	{
		Name:     "generic-error",
		Category: "generic",
		// A bare "error" only counts when followed by ':', '[' or another
		// word. This keeps prose like "no errors found" from matching;
		// under- and over-matching natural language is accepted.
		Expr: `\berror(:|\[|\s+\w)`,
	},
	{
		Name:     "fatal-error",
		Category: "generic",
		Expr:     `fatal\s+error|\bfatal:`,
	},
	{
		Name:     "unhandled-exception",
		Category: "exception",
		Expr:     `(unhandled|uncaught)\s+(exception|rejection|error)`,
	},
	{
		Name:     "stack-trace-header",
		Category: "trace",
		Expr:     `traceback \(most recent call last\)|stack trace:`,
	},
	{
		Name:     "runtime-exception-type",
		Category: "exception",
		Expr:     `\b(typeerror|referenceerror|syntaxerror|rangeerror|nullpointerexception|classcastexception|indexoutofboundsexception|stackoverflowerror|outofmemoryerror|indexerror|keyerror|valueerror|attributeerror|zerodivisionerror)\b`,
	},
	{
		Name:     "thread-exception",
		Category: "exception",
		Expr:     `exception in thread`,
	},
	{
		Name:     "panic",
		Category: "crash",
		Expr:     `\bpanic:|kernel panic`,
	},
	{
		Name:     "build-failure",
		Category: "build",
		Expr:     `build failed|compilation (failed|error)|compile error`,
	},
	{
		Name:     "package-manager-error",
		Category: "build",
		Expr:     `npm err!|yarn error|make(\[\d+\])?: \*\*\*`,
	},
	{
		Name:     "compiler-diagnostic",
		Category: "build",
		// gcc/clang "file.c:10:5: error:" and rustc "error[E0308]".
		Expr: `:\d+:\d+: (fatal )?error|error\[e\d+\]`,
	},
	{
		Name:     "segfault",
		Category: "crash",
		Expr:     `segmentation fault|sigsegv`,
	},
	{
		Name:     "command-not-found",
		Category: "shell",
		Expr:     `command not found|is not recognized as an internal or external command`,
	},
	{
		Name:     "permission-denied",
		Category: "shell",
		Expr:     `permission denied|access (is )?denied`,
	},
}

// SignatureNames returns the names of the built-in signatures.
func SignatureNames() []string {
	return lo.Map(Signatures, func(s Signature, _ int) string { return s.Name })
}

// SignatureCategories returns the distinct categories in table order.
func SignatureCategories() []string {
	return lo.Uniq(lo.Map(Signatures, func(s Signature, _ int) string { return s.Category }))
}
