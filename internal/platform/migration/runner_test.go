// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/coursedesk", "pgx5://u:p@db:5432/coursedesk"},
		{"postgresql://db/coursedesk?sslmode=disable", "pgx5://db/coursedesk?sslmode=disable"},
		{"pgx5://db/coursedesk", "pgx5://db/coursedesk"},
		{"host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toPgx5DSN(tt.in))
	}
}
