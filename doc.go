/*
Package ahocorasick provides multi-pattern string matching. A set of
patterns is compiled into an automaton that reports every occurrence of
every pattern in a text, overlapping occurrences included, in a single
linear pass over the text.
*/
package ahocorasick
