package filter

import "encoding/json"

// Project 把每筆資料轉成 map，只保留指定欄位與 _id
func Project[T any](items []T, fields []string) ([]map[string]any, error) {
	keep := map[string]bool{"_id": true}
	for _, f := range fields {
		keep[f] = true
	}

	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		b, err := json.Marshal(it)
		if err != nil {
			return nil, err
		}
		var doc map[string]any
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		for k := range doc {
			if !keep[k] {
				delete(doc, k)
			}
		}
		out = append(out, doc)
	}
	return out, nil
}
