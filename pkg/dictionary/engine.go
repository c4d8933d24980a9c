package dictionary

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"strings"
	"sync"
)

// Store 词典持久化存储
type Store interface {
	// Load 读取全部词条，存储不存在时不调用 fn 且返回nil
	Load(fn func(word, meaning string)) error
	// Save 用 entries 整体覆盖存储内容
	Save(entries iter.Seq2[string, string]) error
	// Close 关闭存储
	Close() error
}

// Segmenter 分词器
type Segmenter interface {
	Add(word string)
	Remove(word string)
	Cut(text string) []string
}

// Option 引擎选项
type Option func(*Engine)

// WithRecorder 设置诊断事件接收者
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// WithSegmenter 设置分词器，启用 Explain
func WithSegmenter(s Segmenter) Option {
	return func(e *Engine) { e.segmenter = s }
}

// Engine 词典引擎
// 一把互斥锁保护整棵前缀树
type Engine struct {
	mu        sync.Mutex
	trie      *Trie     // 前缀树
	store     Store     // 持久化存储
	recorder  Recorder  // 诊断事件
	segmenter Segmenter // 分词器，可为nil
}

// New 创建词典引擎
func New(store Store, opts ...Option) *Engine {
	e := &Engine{
		trie:     NewTrie(),
		store:    store,
		recorder: NopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load 从存储加载词条，返回加载后的词条数
// 读取失败只记录事件，以已读取的内容（通常为空）继续
func (e *Engine) Load() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.store.Load(func(word, meaning string) {
		e.trie.Insert(word, meaning)
		if e.segmenter != nil {
			e.segmenter.Add(Normalize(word))
		}
	})
	if errors.Is(err, os.ErrNotExist) {
		err = nil
	}

	e.recorder.Record(Event{Op: OpLoad, Count: e.trie.Len(), Hit: err == nil, Err: err, Size: e.trie.Len()})
	return e.trie.Len()
}

// Save 将当前词条整体写回存储
// 失败时内存中的词条不受影响
func (e *Engine) Save() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.store.Save(e.trie.Entries())
	e.recorder.Record(Event{Op: OpSave, Count: e.trie.Len(), Hit: err == nil, Err: err, Size: e.trie.Len()})
	if err != nil {
		return fmt.Errorf("save dictionary fail: %w", err)
	}
	return nil
}

// Insert 添加或覆盖一个词条
// 引擎不校验单词，需要持久化的调用方应先用 ValidWord 检查
func (e *Engine) Insert(word, meaning string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.trie.Insert(word, meaning)
	if e.segmenter != nil {
		e.segmenter.Add(Normalize(word))
	}
	e.recorder.Record(Event{Op: OpInsert, Word: word, Hit: true, Count: 1, Size: e.trie.Len()})
}

// Search 查询释义
func (e *Engine) Search(word string) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	meaning, ok := e.trie.Search(word)
	e.recorder.Record(Event{Op: OpSearch, Word: word, Hit: ok, Size: e.trie.Len()})
	return meaning, ok
}

// Autocomplete 返回以 prefix 开头的词条，按字符顺序排列
func (e *Engine) Autocomplete(prefix string) []DictEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	var entries []DictEntry
	for word, meaning := range e.trie.Autocomplete(prefix) {
		entries = append(entries, DictEntry{Word: word, Meaning: meaning})
	}
	e.recorder.Record(Event{Op: OpAutocomplete, Word: prefix, Hit: len(entries) > 0, Count: len(entries), Size: e.trie.Len()})
	return entries
}

// Delete 删除词条，返回是否删除
func (e *Engine) Delete(word string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	ok := e.trie.Delete(word)
	if ok && e.segmenter != nil {
		e.segmenter.Remove(Normalize(word))
	}
	e.recorder.Record(Event{Op: OpDelete, Word: word, Hit: ok, Size: e.trie.Len()})
	return ok
}

// Explain 对句子分词，返回其中已收录单词的词条
// 按出现顺序排列，重复单词只返回一次；未设置分词器时返回nil
func (e *Engine) Explain(text string) []DictEntry {
	if e.segmenter == nil {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	tokens := e.segmenter.Cut(Normalize(text))

	seen := make(map[string]struct{})
	var entries []DictEntry
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		meaning, ok := e.trie.Search(token)
		if !ok {
			continue
		}
		seen[token] = struct{}{}
		entries = append(entries, DictEntry{Word: token, Meaning: meaning})
	}
	e.recorder.Record(Event{Op: OpExplain, Word: text, Hit: len(entries) > 0, Count: len(entries), Size: e.trie.Len()})
	return entries
}

// Len 词条数量
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trie.Len()
}

// Close 关闭存储，不会自动保存
func (e *Engine) Close() error {
	return e.store.Close()
}
