package useragent_test

import (
	"testing"

	"github.com/dmitrymomot/browsergate/pkg/useragent"
)

var benchmarkUAs = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/105.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Linux; Android 12; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/17.0 Chrome/96.0.4664.104 Mobile Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 15_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.6 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:103.0) Gecko/20100101 Firefox/103.0",
	"Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko",
}

// Prevents compiler optimizations from eliminating the benchmarked call
var benchClient useragent.Client

func BenchmarkTokenize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchClient = useragent.Tokenize(benchmarkUAs[i%len(benchmarkUAs)])
	}
}

func BenchmarkTokenizeWorstCase(b *testing.B) {
	// Unidentifiable input walks every pattern before giving up
	ua := "some completely unrecognizable user agent string with no known tokens"

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchClient = useragent.Tokenize(ua)
	}
}
