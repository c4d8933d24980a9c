package dictionary

// Op 操作类型
type Op string

const (
	OpInsert       Op = "insert"
	OpSearch       Op = "search"
	OpAutocomplete Op = "autocomplete"
	OpDelete       Op = "delete"
	OpExplain      Op = "explain"
	OpLoad         Op = "load"
	OpSave         Op = "save"
)

// Event 诊断事件
type Event struct {
	Op    Op     // 操作
	Word  string // 单词、前缀或句子
	Hit   bool   // 查询命中 / 删除成功
	Count int    // 补全、加载、保存涉及的词条数
	Size  int    // 操作后的词条总数
	Err   error  // 加载、保存失败原因
}

// Recorder 诊断事件接收者
type Recorder interface {
	Record(event Event)
}

// RecorderFunc 函数形式的 Recorder
type RecorderFunc func(event Event)

// Record 实现 Recorder
func (f RecorderFunc) Record(event Event) { f(event) }

// NopRecorder 丢弃全部事件
type NopRecorder struct{}

// Record 实现 Recorder
func (NopRecorder) Record(Event) {}

// MultiRecorder 将事件依次分发给多个 Recorder
func MultiRecorder(recorders ...Recorder) Recorder {
	return RecorderFunc(func(event Event) {
		for _, r := range recorders {
			r.Record(event)
		}
	})
}
