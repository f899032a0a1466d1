// Package segtree 提供一个泛型线段树，用于高效地处理序列的区间查询和单点更新操作。
// 树的每个节点代表序列的一个闭区间，并缓存聚合函数在该区间上的折叠结果；
// 根节点覆盖整个序列，叶子节点对应单个元素。
// 构建的时间复杂度为 O(N)，查询和更新均为 O(log N)。
// 聚合函数由调用方在构建时提供，必须满足结合律（例如求和、最小值、最大值、gcd、
// 字符串拼接），树会严格按照下标升序合并子结果，因此不要求交换律。
package segtree

import "fmt"

// node 线段树节点，负责闭区间 [leftBound, rightBound]。
// 叶子节点（leftBound == rightBound）不含子节点；
// 内部节点恰好拥有两个子节点，分别覆盖区间的左右两半。
type node[T any] struct {
	left       *node[T]
	right      *node[T]
	value      T // 聚合函数在 [leftBound, rightBound] 上的折叠结果缓存。
	leftBound  int
	rightBound int
}

// leaf 判断当前节点是否为叶子节点。
func (nd *node[T]) leaf() bool {
	return nd.leftBound == nd.rightBound
}

// CombineFunc 聚合函数，将两个子区间的折叠结果合并为一个。
// 必须满足结合律且无副作用；该契约由调用方保证，树本身不校验。
type CombineFunc[T any] func(a, b T) T

// SegmentTree 泛型线段树。结构在构建后不可变，单点更新只替换叶子值
// 并自底向上重算受影响祖先的缓存；不支持区间更新与懒标记。
// 非并发安全，需要并发访问时由调用方自行加锁。
type SegmentTree[T any] struct {
	root    *node[T]
	combine CombineFunc[T]
	n       int
}

// New 基于输入序列和聚合函数构建线段树。
// values: 原始序列，长度必须大于 0；元素会被拷贝进树，之后对切片的修改不影响树。
// combine: 满足结合律的聚合函数，整棵树共享同一个实例。
// 时间和空间复杂度均为 O(N)，共创建 2N-1 个节点。
func New[T any](values []T, combine CombineFunc[T]) (*SegmentTree[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyData
	}
	if combine == nil {
		return nil, ErrNilCombine
	}

	st := &SegmentTree[T]{combine: combine, n: len(values)}
	st.root = st.build(values, 0, len(values)-1)
	return st, nil
}

// build 递归构建覆盖区间 [lo, hi] 的子树。
func (st *SegmentTree[T]) build(values []T, lo, hi int) *node[T] {
	nd := &node[T]{leftBound: lo, rightBound: hi}
	if lo == hi {
		nd.value = values[lo]
		return nd
	}

	mid := (lo + hi) / 2
	nd.left = st.build(values, lo, mid)
	nd.right = st.build(values, mid+1, hi)
	nd.value = st.combine(nd.left.value, nd.right.value)
	return nd
}

// Len 返回原始序列的长度。
func (st *SegmentTree[T]) Len() int {
	return st.n
}

// Query 区间查询，返回聚合函数在 [left, right]（0-indexed 闭区间）上的折叠结果。
// 子结果严格按照下标升序合并，因此对非交换的聚合函数（如字符串拼接）同样正确。
// left > right 或区间越界时返回 ErrOutOfRange，不做截断或修正。
// 时间复杂度 O(log N)。
func (st *SegmentTree[T]) Query(left, right int) (T, error) {
	if left < 0 || right >= st.n || left > right {
		var zero T
		return zero, fmt.Errorf("%w: query [%d, %d] not within [0, %d]", ErrOutOfRange, left, right, st.n-1)
	}
	return st.query(st.root, left, right), nil
}

// query 在以 nd 为根的子树内查询 [left, right]，调用方保证区间嵌套于节点区间内。
func (st *SegmentTree[T]) query(nd *node[T], left, right int) T {
	// 区间与节点完全重合，直接命中缓存。
	if left == nd.leftBound && right == nd.rightBound {
		return nd.value
	}

	// 长度为 1 的叶子区间只会命中上面的分支，走到这里必然是内部节点。
	mid := nd.left.rightBound
	switch {
	case left > mid:
		// 查询区间完全落在右半边。
		return st.query(nd.right, left, right)
	case right <= mid:
		// 查询区间完全落在左半边。
		return st.query(nd.left, left, right)
	default:
		// 跨越分割点：左右各查一半，按下标升序合并。
		return st.combine(st.query(nd.left, left, mid), st.query(nd.right, mid+1, right))
	}
}

// Update 单点更新，把下标 index 处的元素替换为 value，
// 并自底向上重算从该叶子到根路径上所有祖先的缓存聚合值。
// 下标越界时返回 ErrOutOfRange，任何节点都不会被修改。
// 时间复杂度 O(log N)。
func (st *SegmentTree[T]) Update(index int, value T) error {
	if index < 0 || index >= st.n {
		return fmt.Errorf("%w: index %d not within [0, %d]", ErrOutOfRange, index, st.n-1)
	}
	st.update(st.root, index, value)
	return nil
}

// update 在以 nd 为根的子树内更新下标 index，调用方保证 index 在节点区间内。
func (st *SegmentTree[T]) update(nd *node[T], index int, value T) {
	if nd.leaf() {
		nd.value = value
		return
	}

	if index <= nd.left.rightBound {
		st.update(nd.left, index, value)
	} else {
		st.update(nd.right, index, value)
	}

	// 恢复内部节点的聚合缓存不变量。
	nd.value = st.combine(nd.left.value, nd.right.value)
}

// Verify 递归校验整棵树的结构不变量：
// 叶子节点无子节点，内部节点恰好拥有两个子节点且子区间精确二分父区间，
// 内部节点的缓存值等于两个子节点缓存值的聚合结果。
// eq: 元素相等性判断，由调用方提供（T 未约束为 comparable）。
// 发现第一处破坏即返回包装后的 ErrCorruptedTree；通常只在测试或诊断时使用。
func (st *SegmentTree[T]) Verify(eq func(a, b T) bool) error {
	return st.verify(st.root, eq)
}

func (st *SegmentTree[T]) verify(nd *node[T], eq func(a, b T) bool) error {
	if nd.leaf() {
		if nd.left != nil || nd.right != nil {
			return fmt.Errorf("%w: leaf [%d] has children", ErrCorruptedTree, nd.leftBound)
		}
		return nil
	}

	if nd.left == nil || nd.right == nil {
		return fmt.Errorf("%w: internal node [%d, %d] missing a child", ErrCorruptedTree, nd.leftBound, nd.rightBound)
	}

	mid := (nd.leftBound + nd.rightBound) / 2
	if nd.left.leftBound != nd.leftBound || nd.left.rightBound != mid ||
		nd.right.leftBound != mid+1 || nd.right.rightBound != nd.rightBound {
		return fmt.Errorf("%w: children [%d, %d] and [%d, %d] do not partition [%d, %d]",
			ErrCorruptedTree,
			nd.left.leftBound, nd.left.rightBound,
			nd.right.leftBound, nd.right.rightBound,
			nd.leftBound, nd.rightBound)
	}

	if !eq(nd.value, st.combine(nd.left.value, nd.right.value)) {
		return fmt.Errorf("%w: stale aggregate at node [%d, %d]", ErrCorruptedTree, nd.leftBound, nd.rightBound)
	}

	if err := st.verify(nd.left, eq); err != nil {
		return err
	}
	return st.verify(nd.right, eq)
}
