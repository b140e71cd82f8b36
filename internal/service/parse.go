package service

import (
	"encoding/json"
	"strings"
)

// FlexibleIDList 兼容两种入参形态：原生 JSON 数组，或数组再编码成的
// JSON 字符串（部分前端表单会这样提交）。非数字元素直接丢弃。
type FlexibleIDList []uint

func (f *FlexibleIDList) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if len(raw) >= 2 && raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		raw = strings.TrimSpace(inner)
	}
	*f = nil
	if raw == "" || raw == "null" {
		return nil
	}

	var loose []interface{}
	if err := json.Unmarshal([]byte(raw), &loose); err != nil {
		return err
	}
	for _, elem := range loose {
		var num float64
		switch v := elem.(type) {
		case float64:
			num = v
		case string:
			if err := json.Unmarshal([]byte(v), &num); err != nil {
				continue
			}
		default:
			continue
		}
		if num > 0 && num == float64(uint(num)) {
			*f = append(*f, uint(num))
		}
	}
	return nil
}

// normalizeTagNames 标签归一化：小写、去首尾空白、去重、丢弃空串，
// 保持首次出现的顺序
func normalizeTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	return result
}

// dedupeIDs 去重并保持顺序
func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
