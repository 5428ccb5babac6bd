package ahocorasick

import (
	"strings"
	"testing"
)

var benchPatterns = []string{
	"he", "she", "his", "hers", "hero", "shell", "shore",
	"i", "is", "ppi", "sip", "mississippi",
	"a", "ab", "bab", "bc", "bca", "c", "caa",
}

func BenchmarkBuild(b *testing.B) {
	for i := 0; i < b.N; i++ {
		a := New()
		for _, p := range benchPatterns {
			a.Insert(p)
		}
		a.Build()
	}
}

func BenchmarkSearch(b *testing.B) {
	a := New()
	for _, p := range benchPatterns {
		a.Insert(p)
	}
	a.Build()
	text := strings.Repeat("ushers went to mississippi and bought seashells ", 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Search(text)
	}
}

func BenchmarkScan(b *testing.B) {
	a := New()
	for _, p := range benchPatterns {
		a.Insert(p)
	}
	a.Build()
	text := strings.Repeat("ushers went to mississippi and bought seashells ", 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		a.Scan(text, func(Match) bool {
			n++
			return true
		})
	}
}
