// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/coursedesk/pkg/pointer"
)

func TestBlank(t *testing.T) {
	assert.True(t, pointer.Blank(nil))
	assert.True(t, pointer.Blank(pointer.To("  ")))
	assert.False(t, pointer.Blank(pointer.To("Music")))

	assert.Nil(t, pointer.NilIfBlank(pointer.To("")))
	assert.Equal(t, "x", pointer.Val(pointer.NilIfBlank(pointer.To("x"))))
	assert.Equal(t, 0, pointer.Val[int](nil))
}
