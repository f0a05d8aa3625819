// Copyright (c) 2026 Vitalis Health. All rights reserved.
// Author: dev@vitalis.health

package avatar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalis-health/vitalis/pkg/avatar"
)

/*
TestFromName checks URL generation including accent stripping, whitespace
collapsing, and the empty-name fallback.
*/
func TestFromName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"simple_name",
			"Demo User",
			"https://ui-avatars.com/api/?background=0EA5E9&color=fff&name=Demo+User",
		},
		{
			"accented_name",
			"José Gutiérrez",
			"https://ui-avatars.com/api/?background=0EA5E9&color=fff&name=Jose+Gutierrez",
		},
		{
			"extra_whitespace",
			"  Ada   Lovelace ",
			"https://ui-avatars.com/api/?background=0EA5E9&color=fff&name=Ada+Lovelace",
		},
		{
			"empty_falls_back",
			"",
			"https://ui-avatars.com/api/?background=0EA5E9&color=fff&name=Member",
		},
		{
			"whitespace_falls_back",
			"   ",
			"https://ui-avatars.com/api/?background=0EA5E9&color=fff&name=Member",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, avatar.FromName(tt.input))
		})
	}
}
