package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  RollRecord
		wantErr bool
	}{
		{name: "empty record", record: RollRecord{}},
		{name: "full record", record: RollRecord{
			Total:   IntPtr(12),
			Dice:    []int{3, 4, 5},
			Success: BoolPtr(true),
			Margin:  IntPtr(2),
		}},
		{name: "crit failure without success", record: RollRecord{Success: BoolPtr(false), IsCritFailure: true}},
		{name: "total too low", record: RollRecord{Total: IntPtr(2)}, wantErr: true},
		{name: "total too high", record: RollRecord{Total: IntPtr(19)}, wantErr: true},
		{name: "empty dice", record: RollRecord{Dice: []int{}}, wantErr: true},
		{name: "four dice", record: RollRecord{Dice: []int{1, 2, 3, 4}}, wantErr: true},
		{name: "face of zero", record: RollRecord{Dice: []int{0, 2, 3}}, wantErr: true},
		{name: "crit failure marked success", record: RollRecord{Success: BoolPtr(true), IsCritFailure: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
