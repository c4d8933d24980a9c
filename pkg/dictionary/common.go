package dictionary

import (
	"strings"
	"unicode/utf8"
)

// 按Unicode字符分割字符串
func SplitString(s string) []string {
	var result []string
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		result = append(result, s[:size])
		s = s[size:]
	}
	return result
}

// Normalize 去掉首尾空白并转为小写，插入、查询、补全、删除共用
// 非法UTF-8字节原样保留，不折叠为U+FFFD
func Normalize(word string) string {
	word = strings.TrimSpace(word)
	if utf8.ValidString(word) {
		return strings.ToLower(word)
	}

	var b strings.Builder
	b.Grow(len(word))
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(word[0])
		} else {
			b.WriteString(strings.ToLower(word[:size]))
		}
		word = word[size:]
	}
	return b.String()
}

// ValidWord 判断单词能否原样写入持久化文件
// 空词、包含冒号或换行的词无法按 "word: meaning" 格式还原
func ValidWord(word string) error {
	if strings.TrimSpace(word) == "" {
		return ErrInvalidWord
	}
	if strings.ContainsAny(word, ":\r\n") {
		return ErrInvalidWord
	}
	return nil
}
