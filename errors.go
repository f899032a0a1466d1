package segtree

import "errors"

var (
	// ErrEmptyData 输入数据为空。
	ErrEmptyData = errors.New("empty data")
	// ErrNilCombine 聚合函数为空。
	ErrNilCombine = errors.New("nil combine function")
	// ErrOutOfRange 查询或更新的下标超出有效区间。
	ErrOutOfRange = errors.New("index out of range")
	// ErrCorruptedTree 树结构或缓存聚合值被破坏。
	ErrCorruptedTree = errors.New("corrupted tree")
)
