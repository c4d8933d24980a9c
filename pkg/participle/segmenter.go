package participle

import (
	"fmt"

	"github.com/go-ego/gse"
)

// 词典单词加入分词器时使用的词频与词性
const (
	defaultFrequency = 1000.0
	defaultPos       = "nz"
)

// Segmenter 分词器
// 加载gse默认词典，词典中的单词作为自定义词条加入。
// 只移除自己加入的词条，gse原有词汇不受影响；由 dictionary.Engine 加锁调用
type Segmenter struct {
	segmenter gse.Segmenter       // GSE分词器
	added     map[string]struct{} // 由 Add 加入的词条
}

// New 创建分词器
func New() (*Segmenter, error) {
	seg, err := gse.New()
	if err != nil {
		return nil, fmt.Errorf("init gse segmenter fail: %v", err)
	}
	return &Segmenter{segmenter: seg, added: make(map[string]struct{})}, nil
}

// Add 添加一个自定义词条，gse已收录的词不重复添加
func (s *Segmenter) Add(word string) {
	if word == "" {
		return
	}
	if _, ok := s.added[word]; ok {
		return
	}
	if s.Known(word) {
		return
	}
	s.segmenter.AddToken(word, defaultFrequency, defaultPos)
	s.added[word] = struct{}{}
}

// Remove 移除一个由 Add 加入的词条
func (s *Segmenter) Remove(word string) {
	if _, ok := s.added[word]; !ok {
		return
	}
	s.segmenter.RemoveToken(word)
	delete(s.added, word)
}

// Known 分词词典是否包含该词
func (s *Segmenter) Known(word string) bool {
	_, _, ok := s.segmenter.Find(word)
	return ok
}

// Cut 对文本进行分词，去掉纯符号与空白
func (s *Segmenter) Cut(text string) []string {
	words := s.segmenter.Cut(text, true)

	result := words[:0]
	for _, word := range words {
		if IsSpecialChar(word) {
			continue
		}
		result = append(result, word)
	}
	return result
}
