package dictionary

import "errors"

var (
	// ErrInvalidWord 单词为空或包含分隔符
	ErrInvalidWord = errors.New("invalid word")
	// ErrStoreClosed 存储已关闭
	ErrStoreClosed = errors.New("store closed")
)
