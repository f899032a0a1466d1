package segtree

import "cmp"

// Number 支持加法折叠的数值类型约束。
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Integer 支持 gcd 折叠的整数类型约束。
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Sum 求和聚合函数，适用于区间和查询（库存、销量统计等场景）。
func Sum[T Number](a, b T) T {
	return a + b
}

// Min 最小值聚合函数，适用于区间最小值查询。
func Min[T cmp.Ordered](a, b T) T {
	return min(a, b)
}

// Max 最大值聚合函数，适用于区间最大值查询。
func Max[T cmp.Ordered](a, b T) T {
	return max(a, b)
}

// GCD 最大公约数聚合函数，适用于区间 gcd 查询。
// 负数按绝对值处理，GCD(0, x) == x。
func GCD[T Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
