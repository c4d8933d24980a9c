package badger

import "github.com/dgraph-io/badger/v4"

// BadgerBatch 批量操作
type BadgerBatch func(*badger.WriteBatch) error

// Batch 批量操作，bb 返回nil时提交
func (e *Engine) Batch(bb BadgerBatch) error {
	wb := e.db.NewWriteBatch()
	defer wb.Cancel()
	if err := bb(wb); err != nil {
		return err
	}
	return wb.Flush()
}

// DropAll 清空全部数据
func (e *Engine) DropAll() error {
	return e.db.DropAll()
}

// ScanFunc 遍历回调，key、value 只在回调期间有效
type ScanFunc func(key, value []byte) error

// Scan 按key顺序遍历
// @param prefix 前缀，nil表示全部
func (e *Engine) Scan(prefix []byte, fn ScanFunc) error {
	return e.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := item.Key()
			err := item.Value(func(val []byte) error {
				return fn(key, val)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
