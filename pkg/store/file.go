package store

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/miajio/dict/pkg/dictionary"
)

// File 纯文本文件存储，每行一个 "word: meaning"
// 文件名以 .gz 结尾时使用gzip压缩
type File struct {
	path     string
	compress bool
}

// NewFile 创建文件存储
func NewFile(path string) *File {
	return &File{
		path:     path,
		compress: strings.HasSuffix(path, ".gz"),
	}
}

// Path 文件路径
func (f *File) Path() string { return f.path }

// Load 读取全部词条，文件不存在时返回 os.ErrNotExist
func (f *File) Load(fn func(word, meaning string)) error {
	fh, err := os.Open(f.path)
	if err != nil {
		return err
	}
	defer fh.Close()

	var r io.Reader = fh
	if f.compress {
		gz, err := gzip.NewReader(fh)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("open gzip %s fail: %w", f.path, err)
		}
		defer gz.Close()
		r = gz
	}

	if err := dictionary.ReadEntries(r, fn); err != nil {
		return fmt.Errorf("read %s fail: %w", f.path, err)
	}
	return nil
}

// Save 先写临时文件再重命名，整体覆盖原文件，保留原文件权限
func (f *File) Save(entries iter.Seq2[string, string]) (err error) {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if f.compress {
		gz := gzip.NewWriter(tmp)
		if err = dictionary.WriteEntries(gz, entries); err != nil {
			return err
		}
		if err = gz.Close(); err != nil {
			return err
		}
	} else if err = dictionary.WriteEntries(tmp, entries); err != nil {
		return err
	}

	// 沿用原文件权限，新文件为0644
	mode := os.FileMode(0o644)
	if fi, statErr := os.Stat(f.path); statErr == nil {
		mode = fi.Mode().Perm()
	}
	if err = tmp.Chmod(mode); err != nil {
		return err
	}

	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// Close 文件存储无需关闭
func (f *File) Close() error { return nil }
