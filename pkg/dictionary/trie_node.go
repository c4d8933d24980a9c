package dictionary

import (
	"maps"
	"slices"
)

// TrieNode 前缀树节点
type TrieNode struct {
	Children map[string]*TrieNode // 子节点，使用完整字符作为键
	IsEnd    bool                 // 是否是一个词的结尾
	Entry    *DictEntry           // 如果是词尾，存储词条信息
}

// NewTrieNode 创建一个新的前缀树节点
func NewTrieNode() *TrieNode {
	return &TrieNode{
		Children: make(map[string]*TrieNode),
		IsEnd:    false,
		Entry:    nil,
	}
}

// mark 标记为词尾并写入词条
func (n *TrieNode) mark(word, meaning string) {
	n.IsEnd = true
	n.Entry = &DictEntry{Word: word, Meaning: meaning}
}

// unmark 取消词尾标记，词条随之清空
func (n *TrieNode) unmark() {
	n.IsEnd = false
	n.Entry = nil
}

// prunable 非词尾且没有子节点
func (n *TrieNode) prunable() bool {
	return !n.IsEnd && len(n.Children) == 0
}

// sortedKeys 按字符排序的子节点键，保证遍历顺序稳定
func (n *TrieNode) sortedKeys() []string {
	return slices.Sorted(maps.Keys(n.Children))
}
