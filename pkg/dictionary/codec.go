package dictionary

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// 单行最大长度
const maxLineSize = 1 << 20

// Serialize 将前缀树写为 "word: meaning" 文本
// 读取时按第一个冒号拆分，单词中的冒号、任一侧的换行会使该行无法还原，见 ValidWord
func (t *Trie) Serialize(w io.Writer) error {
	return WriteEntries(w, t.Entries())
}

// Deserialize 从 "word: meaning" 文本读取词条并插入前缀树
func (t *Trie) Deserialize(r io.Reader) error {
	return ReadEntries(r, t.Insert)
}

// WriteEntries 逐行写出词条
func WriteEntries(w io.Writer, entries iter.Seq2[string, string]) error {
	bw := bufio.NewWriter(w)
	for word, meaning := range entries {
		if _, err := bw.WriteString(FormatLine(word, meaning)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadEntries 逐行读取词条，没有冒号的行直接跳过
func ReadEntries(r io.Reader, fn func(word, meaning string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		word, meaning, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		fn(word, meaning)
	}
	return scanner.Err()
}

// FormatLine 格式化单行
func FormatLine(word, meaning string) string {
	return word + ": " + meaning
}

// ParseLine 按第一个冒号拆分单词与释义，两侧去除空白
func ParseLine(line string) (word, meaning string, ok bool) {
	word, meaning, ok = strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(word), strings.TrimSpace(meaning), true
}
