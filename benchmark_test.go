package cronnext

import (
	"testing"
	"time"
)

// BenchmarkParse benchmarks parsing cron expressions.
func BenchmarkParse(b *testing.B) {
	specs := []string{
		"* * * * *",
		"0 0 * * *",
		"*/5 * * * *",
		"0 9-17 * * MON-FRI",
		"30 4 1,15 * *",
		"0 8 LW * *",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(specs[i%len(specs)]); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNext benchmarks next-time searches of different density.
func BenchmarkNext(b *testing.B) {
	ref := time.Date(2025, 1, 3, 9, 4, 30, 0, time.UTC)
	benchmarks := []struct {
		name string
		spec string
	}{
		{"EveryMinute", "* * * * *"},
		{"Daily", "@daily"},
		{"LastFriday", "0 12 * * 5L"},
		{"EndOfYear", "59 23 31 12 *"},
	}

	for _, bm := range benchmarks {
		e := MustParse(bm.spec)
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := e.Next(ref); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkNextExhausted measures the worst case: a full search window.
func BenchmarkNextExhausted(b *testing.B) {
	ref := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	e := MustParse("0 0 30 2 *")

	for i := 0; i < b.N; i++ {
		_, _ = e.Next(ref)
	}
}

// BenchmarkResolveDays measures resolving the day fields for one month.
func BenchmarkResolveDays(b *testing.B) {
	e := MustParse("0 0 LW,15W * 1#3,5L")

	for i := 0; i < b.N; i++ {
		_ = e.resolveDays(2025, 1+i%12)
	}
}
