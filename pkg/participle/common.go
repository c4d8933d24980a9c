package participle

import "regexp"

// 标点符号、符号与分隔符
var specialChars = regexp.MustCompile(`^[\p{P}\p{S}\p{Z}\s]+$`)

// IsSpecialChar 判断字符串是否全部为特殊符号
func IsSpecialChar(s string) bool {
	// 检查是否为空字符串
	if s == "" {
		return false
	}
	return specialChars.MatchString(s)
}
