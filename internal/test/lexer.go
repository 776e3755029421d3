package test

import (
	"math/rand"
	"strings"
)

// validTokens is delimited on '|' rather than ';', since ';' is itself one
// of Rouleaux's valid lexemes (the statement terminator) and must appear as
// its own entry.
const validTokens = "for|while|do|if|else|null|call|main|(|)|{|}|->|:|;|=|\"this is a string\"|\"this is a longer string containing a bunch of text: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum.\"|\"this is a small string\"|\"\"|+|-|*|/|%|<|>|123|3.14|321|//comment\n|\n"

// GetRandomTokens builds a space-separated string of size random lexemes
// drawn from Rouleaux's keyword, punctuation, literal and comment set, for
// driving lexer benchmarks and fuzz-style totality checks.
func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

// GetRandomTokensWithSep is GetRandomTokens with a caller-chosen separator.
func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, "|")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
