// Package markup classifies the lines of a markup-lite résumé source into
// typed blocks.
//
// The notation is line oriented:
//
//	# Title
//	## Section
//	### Subsection
//	**Degree, Institution, Year**   (inside the education section only)
//	- bullet text
//	- cell one | cell two           (multi-column row)
//	Label: value
//
// Blank lines become spacers and anything else is a paragraph. Each line is
// matched against [Rules] in order and the first matching rule builds the
// block. The only state carried between lines is [State], which tracks whether
// the most recent section header named the education section; [Classify]
// takes it as an argument and returns the next value, so every rule can be
// exercised on its own.
package markup
