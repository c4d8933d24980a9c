package dictionary

// DictEntry 字典词条
type DictEntry struct {
	Word    string `json:"word"`    // 单词（已转为小写）
	Meaning string `json:"meaning"` // 释义
}
