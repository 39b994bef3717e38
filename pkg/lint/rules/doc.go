// Package rules provides the built-in style rules for beamerlint.
//
// Every rule is a declarative lint.PatternRule: a list of regular expressions
// with a category, a severity, a message, and an optional fix template.
// Detection is line-local and purely textual. Constructs that span several
// lines are not seen, and nothing here parses TeX.
//
//   - BL001: color-command - \textcolor{name}{text} becomes \name{text}
//   - BL002: spacing-command - \bigskip\item, \medskip\item, \vfill\item shortcuts
//   - BL003: text-formatting - \textbf and \textit become \bf and \it
//   - BL004: equations - numbered equation environments and $$ display math
//   - BL005: booktabs - \hline and \hline\hline become \midrule and \toprule
//   - BL006: math-subscript - multi-character subscripts must be braced
package rules
