package shellsort

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"
)

// Generate random data for benchmarks
func generateInt32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rand.Int31n(10000) - 5000
	}
	return data
}

func generateFloat64(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = rand.Float64() * 1000
	}
	return data
}

// Int32 benchmarks
func BenchmarkSort_Int32_100(b *testing.B) {
	benchmarkSortInt32(b, 100)
}

func BenchmarkSort_Int32_1000(b *testing.B) {
	benchmarkSortInt32(b, 1000)
}

func BenchmarkSort_Int32_10000(b *testing.B) {
	benchmarkSortInt32(b, 10000)
}

func benchmarkSortInt32(b *testing.B, n int) {
	ref := generateInt32(n)
	data := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

// Float64 benchmarks
func BenchmarkSort_Float64_100(b *testing.B) {
	benchmarkSortFloat64(b, 100)
}

func BenchmarkSort_Float64_1000(b *testing.B) {
	benchmarkSortFloat64(b, 1000)
}

func BenchmarkSort_Float64_10000(b *testing.B) {
	benchmarkSortFloat64(b, 10000)
}

func benchmarkSortFloat64(b *testing.B, n int) {
	ref := generateFloat64(n)
	data := make([]float64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

// Stdlib comparison
func BenchmarkStdlibSort_Int32_1000(b *testing.B) {
	ref := generateInt32(1000)
	data := make([]int32, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}

// SortBytes benchmarks across element widths
func BenchmarkSortBytes_Width4_1000(b *testing.B) {
	benchmarkSortBytes(b, 1000, 4)
}

func BenchmarkSortBytes_Width8_1000(b *testing.B) {
	benchmarkSortBytes(b, 1000, 8)
}

func BenchmarkSortBytes_Width16_1000(b *testing.B) {
	benchmarkSortBytes(b, 1000, 16)
}

func benchmarkSortBytes(b *testing.B, nel, width int) {
	ref := make([]byte, nel*width)
	rand.Read(ref)
	buf := make([]byte, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, ref)
		SortBytes(buf, nel, width, bytes.Compare)
	}
}
