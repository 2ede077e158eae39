package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// IdList decodes either a JSON array of ids or a string holding one, which
// is how the dashboard client sends member lists ("[1,2,3]").
type IdList []uint

func (l *IdList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*l = IdList{}
			return nil
		}
		if !strings.HasPrefix(raw, "[") {
			return l.parseCSV(raw)
		}
		data = []byte(raw)
	}

	var ids []uint
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("id list: %w", err)
	}
	*l = ids
	return nil
}

func (l *IdList) parseCSV(raw string) error {
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return fmt.Errorf("id list: invalid id %q", part)
		}
		ids = append(ids, uint(id))
	}
	*l = ids
	return nil
}

// Normalize returns the ids sorted with duplicates and zeros removed.
func (l IdList) Normalize() []uint {
	seen := make(map[uint]struct{}, len(l))
	out := make([]uint, 0, len(l))
	for _, id := range l {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
