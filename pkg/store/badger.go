package store

import (
	"encoding/json"
	"fmt"
	"iter"
	"time"

	"github.com/dgraph-io/badger/v4"
	bdg "github.com/miajio/dict/pkg/badger"
	"github.com/miajio/dict/pkg/dictionary"
)

// 词条key前缀，空字符串也能作为单词保存
var wordPrefix = []byte("word/")

// Badger badger存储，key为单词，value为JSON格式的词条
type Badger struct {
	engine *bdg.Engine
}

// NewBadger 使用已打开的badger引擎创建存储
func NewBadger(engine *bdg.Engine) *Badger {
	return &Badger{engine: engine}
}

// OpenBadger 打开目录下的badger数据库
func OpenBadger(dir string, gcInterval time.Duration) (*Badger, error) {
	engine, err := bdg.Default(dir)
	if err != nil {
		return nil, fmt.Errorf("open badger %s fail: %w", dir, err)
	}
	engine.SetGCInterval(gcInterval)
	return NewBadger(engine), nil
}

// Load 遍历全部词条
func (b *Badger) Load(fn func(word, meaning string)) error {
	if b.engine.Closed() {
		return dictionary.ErrStoreClosed
	}
	return b.engine.Scan(wordPrefix, func(key, value []byte) error {
		var entry dictionary.DictEntry
		if err := json.Unmarshal(value, &entry); err != nil {
			return fmt.Errorf("decode entry %q fail: %w", key, err)
		}
		fn(string(key[len(wordPrefix):]), entry.Meaning)
		return nil
	})
}

// Save 清空后批量写入全部词条
func (b *Badger) Save(entries iter.Seq2[string, string]) error {
	if b.engine.Closed() {
		return dictionary.ErrStoreClosed
	}
	if err := b.engine.DropAll(); err != nil {
		return fmt.Errorf("drop badger fail: %w", err)
	}
	return b.engine.Batch(func(wb *badger.WriteBatch) error {
		for word, meaning := range entries {
			data, err := json.Marshal(dictionary.DictEntry{Word: word, Meaning: meaning})
			if err != nil {
				return err
			}
			if err := wb.Set(wordKey(word), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close 关闭badger引擎
func (b *Badger) Close() error {
	return b.engine.Close()
}

func wordKey(word string) []byte {
	key := make([]byte, 0, len(wordPrefix)+len(word))
	key = append(key, wordPrefix...)
	return append(key, word...)
}
