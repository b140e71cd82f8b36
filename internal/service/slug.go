package service

import "strings"

// Slugify 由标题推导 URL slug：小写后把连续的非字母数字字符
// 折叠成单个连字符，并去掉首尾连字符。相同标题总是得到相同结果。
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // 抑制开头的连字符
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
