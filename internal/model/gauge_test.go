package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaugeRole(t *testing.T) {
	tests := []struct {
		code        string
		role        GaugeRole
		settingPlug bool
	}{
		{role: RoleGo, code: "T", settingPlug: false},
		{role: RoleNoGo, code: "Z", settingPlug: false},
		{role: RoleGoGoSettingPlug, code: "TT", settingPlug: true},
		{role: RoleGoWearSettingPlug, code: "TS", settingPlug: true},
		{role: RoleNoGoGoSettingPlug, code: "ZT", settingPlug: true},
		{role: GaugeRole(99), code: "?", settingPlug: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.role.Code())
			assert.Equal(t, tt.settingPlug, tt.role.IsSettingPlug())
		})
	}

	assert.Len(t, GaugeRoles, NumGaugeRoles)
}
