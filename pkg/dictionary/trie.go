package dictionary

import (
	"iter"
	"strings"
)

// Trie 前缀树
// 不是并发安全的，多协程访问由 Engine 加锁
type Trie struct {
	root *TrieNode // 前缀树根节点
	size int       // 词条数量
}

// NewTrie 创建一个空前缀树
func NewTrie() *Trie {
	return &Trie{root: NewTrieNode()}
}

// Insert 插入单词及释义，已存在则覆盖释义
// 单词与释义都去掉首尾空白，空字符串标记在根节点上。
// 包含冒号或换行的单词、包含换行的释义可以插入，但无法经 Serialize 原样还原
func (t *Trie) Insert(word, meaning string) {
	word = Normalize(word)
	meaning = strings.TrimSpace(meaning)
	node := t.root

	for _, char := range SplitString(word) {
		child, ok := node.Children[char]
		if !ok {
			child = NewTrieNode()
			node.Children[char] = child
		}
		node = child
	}

	if !node.IsEnd {
		t.size++
	}
	node.mark(word, meaning)
}

// Search 查询单词释义
func (t *Trie) Search(word string) (string, bool) {
	node := t.find(Normalize(word))
	if node == nil || !node.IsEnd {
		return "", false
	}
	return node.Entry.Meaning, true
}

// Contains 判断单词是否存在
func (t *Trie) Contains(word string) bool {
	_, ok := t.Search(word)
	return ok
}

// Autocomplete 返回以 prefix 开头的全部词条
// 深度优先惰性遍历，前缀不存在时为空序列
func (t *Trie) Autocomplete(prefix string) iter.Seq2[string, string] {
	prefix = Normalize(prefix)
	return func(yield func(string, string) bool) {
		node := t.find(prefix)
		if node == nil {
			return
		}
		walk(node, prefix, yield)
	}
}

// Entries 按深度优先顺序返回全部词条
func (t *Trie) Entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		walk(t.root, "", yield)
	}
}

// Delete 删除单词，返回是否删除
// 删除后沿路径向上回收既不是词尾也没有子节点的节点
func (t *Trie) Delete(word string) bool {
	type step struct {
		parent *TrieNode
		char   string
	}

	node := t.root
	chars := SplitString(Normalize(word))
	path := make([]step, 0, len(chars))

	for _, char := range chars {
		child, ok := node.Children[char]
		if !ok {
			return false
		}
		path = append(path, step{parent: node, char: char})
		node = child
	}

	if !node.IsEnd {
		return false
	}
	node.unmark()
	t.size--

	for i := len(path) - 1; i >= 0; i-- {
		if !node.prunable() {
			break
		}
		delete(path[i].parent.Children, path[i].char)
		node = path[i].parent
	}
	return true
}

// Len 词条数量
func (t *Trie) Len() int {
	return t.size
}

// NodeCount 节点数量（包含根节点）
func (t *Trie) NodeCount() int {
	var count func(node *TrieNode) int
	count = func(node *TrieNode) int {
		n := 1
		for _, child := range node.Children {
			n += count(child)
		}
		return n
	}
	return count(t.root)
}

// find 沿字符路径查找节点，路径不存在返回nil
func (t *Trie) find(word string) *TrieNode {
	node := t.root
	for _, char := range SplitString(word) {
		child, ok := node.Children[char]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// walk 深度优先遍历，先输出当前节点，再按字符顺序访问子节点
// yield 返回false时停止遍历
func walk(node *TrieNode, prefix string, yield func(string, string) bool) bool {
	if node.IsEnd && node.Entry != nil {
		if !yield(prefix, node.Entry.Meaning) {
			return false
		}
	}

	for _, char := range node.sortedKeys() {
		if !walk(node.Children[char], prefix+char, yield) {
			return false
		}
	}
	return true
}
