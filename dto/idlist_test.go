package dto_test

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"job-dashboard/dto"
	"testing"
)

func TestIdList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    dto.IdList
		wantErr bool
	}{
		{name: "plain array", body: `[3,1,2]`, want: dto.IdList{3, 1, 2}},
		{name: "stringified array", body: `"[5, 6]"`, want: dto.IdList{5, 6}},
		{name: "comma separated", body: `"7, 8"`, want: dto.IdList{7, 8}},
		{name: "empty string", body: `""`, want: dto.IdList{}},
		{name: "stringified empty array", body: `"[]"`, want: dto.IdList{}},
		{name: "null", body: `null`, want: nil},
		{name: "garbage string", body: `"a,b"`, wantErr: true},
		{name: "negative id", body: `[-1]`, wantErr: true},
		{name: "object", body: `{"id":1}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got dto.IdList
			err := json.Unmarshal([]byte(tt.body), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdList_Normalize(t *testing.T) {
	assert.Equal(t, []uint{1, 2, 9}, dto.IdList{9, 2, 0, 1, 2}.Normalize())
	assert.Equal(t, []uint{}, dto.IdList(nil).Normalize())
}

func TestAssignMemberRequest_AcceptsClientEncoding(t *testing.T) {
	var req dto.AssignMemberRequest
	body := `{"prevMemberIds":"[1,2]","updateMemberIds":[2,3]}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, dto.IdList{1, 2}, req.PrevMemberIds)
	assert.Equal(t, dto.IdList{2, 3}, req.UpdateMemberIds)
}
