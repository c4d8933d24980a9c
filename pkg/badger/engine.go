package badger

import (
	"errors"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// 默认GC间隔
const DefaultGCInterval = time.Minute * 5

// Engine badger引擎
type Engine struct {
	db *badger.DB // badgerDB

	gcInterval   time.Duration      // GC间隔时间
	gcUpdateChan chan time.Duration // GC更新间隔时间信号

	done             chan struct{} // 退出信号
	doneSuccessChain chan error    // 退出完成信号，携带关闭错误
	closeOnce        sync.Once
	err              error // 错误
}

// Default 创建一个默认的badger引擎
// 只输出警告及以上级别的badger日志，避免干扰交互界面
func Default(addr string) (*Engine, error) {
	return newEngine(badger.DefaultOptions(addr).WithLoggingLevel(badger.WARNING))
}

// InMemory 创建一个纯内存的badger引擎
func InMemory() (*Engine, error) {
	return newEngine(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}

// newEngine 创建一个badger引擎
func newEngine(opt badger.Options) (*Engine, error) {
	db, err := badger.Open(opt)
	if err != nil {
		return nil, err
	}
	be := &Engine{
		db: db,

		gcInterval:   DefaultGCInterval,
		gcUpdateChan: make(chan time.Duration),

		done:             make(chan struct{}),
		doneSuccessChain: make(chan error, 1),
	}
	go be.listener()
	return be, nil
}

// listener 监听GC与退出信号
func (e *Engine) listener() {
	gcTicker := time.NewTicker(e.gcInterval)
	defer gcTicker.Stop()

	for {
		select {
		case <-gcTicker.C:
			e.runGC()
		case newGcInterval := <-e.gcUpdateChan:
			e.gcInterval = newGcInterval
			gcTicker.Reset(newGcInterval)
		case <-e.done:
			e.doneSuccessChain <- e.db.Close()
			return
		}
	}
}

// runGC 回收value log，直到没有可回收的文件
func (e *Engine) runGC() {
	for e.db.RunValueLogGC(0.5) == nil {
	}
}

// Close 关闭badger引擎
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		close(e.done)
		select {
		case err := <-e.doneSuccessChain:
			e.err = err
		case <-time.After(time.Second * 5):
			e.err = errors.New("badger engine close timeout")
		}
	})
	return e.err
}

// Closed 是否已关闭
func (e *Engine) Closed() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}

// SetGCInterval 设置GC间隔
func (e *Engine) SetGCInterval(interval time.Duration) {
	if 0 >= interval {
		return
	}
	select {
	case e.gcUpdateChan <- interval:
	case <-e.done:
	}
}
