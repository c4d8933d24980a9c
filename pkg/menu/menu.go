package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/miajio/dict/pkg/dictionary"
)

// Dictionary 菜单依赖的词典操作
type Dictionary interface {
	Insert(word, meaning string)
	Search(word string) (string, bool)
	Autocomplete(prefix string) []dictionary.DictEntry
	Delete(word string) bool
	Save() error
}

const banner = `1. Insert a word
2. Fetch the meaning of a word
3. Autocomplete a word
4. Delete a word
5. Exit
`

// Menu 交互式数字菜单
type Menu struct {
	dict    Dictionary
	scanner *bufio.Scanner
	out     io.Writer
}

// New 创建菜单
func New(dict Dictionary, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		dict:    dict,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run 循环读取选项，选择退出或输入结束时保存并返回保存结果
func (m *Menu) Run() error {
	for {
		fmt.Fprint(m.out, banner)
		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return m.exit()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			ok = m.insert()
		case "2":
			ok = m.search()
		case "3":
			ok = m.autocomplete()
		case "4":
			ok = m.delete()
		case "5":
			return m.exit()
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
		if !ok {
			return m.exit()
		}
		fmt.Fprintln(m.out)
	}
}

func (m *Menu) insert() bool {
	word, ok := m.promptWord("Enter the word: ")
	if !ok {
		return false
	}
	if err := dictionary.ValidWord(word); err != nil {
		fmt.Fprintf(m.out, "Invalid word %q: words must be non-empty and must not contain ':'.\n", word)
		return true
	}

	meaning, ok := m.prompt("Enter the meaning: ")
	if !ok {
		return false
	}
	meaning = strings.TrimSpace(meaning)
	if meaning == "" {
		fmt.Fprintln(m.out, "Meaning must not be empty.")
		return true
	}

	m.dict.Insert(word, meaning)
	fmt.Fprintln(m.out, "Word inserted successfully.")
	return true
}

func (m *Menu) search() bool {
	word, ok := m.promptWord("Enter the word to search: ")
	if !ok {
		return false
	}
	if meaning, found := m.dict.Search(word); found {
		fmt.Fprintf(m.out, "Meaning: %s\n", meaning)
	} else {
		fmt.Fprintln(m.out, "Word not found.")
	}
	return true
}

func (m *Menu) autocomplete() bool {
	prefix, ok := m.promptWord("Enter the prefix: ")
	if !ok {
		return false
	}
	entries := m.dict.Autocomplete(prefix)
	if len(entries) == 0 {
		fmt.Fprintln(m.out, "No words found.")
		return true
	}
	fmt.Fprintln(m.out, "Auto-complete results:")
	for _, entry := range entries {
		fmt.Fprintln(m.out, dictionary.FormatLine(entry.Word, entry.Meaning))
	}
	return true
}

func (m *Menu) delete() bool {
	word, ok := m.promptWord("Enter the word to delete: ")
	if !ok {
		return false
	}
	if m.dict.Delete(word) {
		fmt.Fprintln(m.out, "Word deleted successfully.")
	} else {
		fmt.Fprintln(m.out, "Word not found.")
	}
	return true
}

func (m *Menu) exit() error {
	err := m.dict.Save()
	if err != nil {
		fmt.Fprintf(m.out, "Failed to save the database: %v\n", err)
	}
	fmt.Fprintln(m.out, "Exiting...")
	return err
}

// prompt 输出提示并读取一行，输入结束时返回false
func (m *Menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.scanner.Scan() {
		return "", false
	}
	return m.scanner.Text(), true
}

// promptWord 读取一行并取第一个字段
func (m *Menu) promptWord(text string) (string, bool) {
	line, ok := m.prompt(text)
	if !ok {
		return "", false
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", true
	}
	return fields[0], true
}
