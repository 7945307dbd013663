// Package expand turns a word into the variants produced by one substitution
// rule: case toggling, capitalization, leet glyphs, phonetic swaps and numeric
// masks. Every function is pure; the tables are read-only.
package expand
