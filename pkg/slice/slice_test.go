// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/coursedesk/pkg/slice"
)

func TestMapIndex(t *testing.T) {
	got := slice.MapIndex([]string{"c", "a", "b"}, func(i int, id string) string {
		return id + strconv.Itoa(i)
	})
	assert.Equal(t, []string{"c0", "a1", "b2"}, got)
	assert.Nil(t, slice.MapIndex[string, string](nil, nil))
}

func TestFilterAndAny(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, []int{2, 4}, slice.Filter([]int{1, 2, 3, 4}, even))
	assert.True(t, slice.Any([]int{1, 2}, even))
	assert.False(t, slice.Any([]int{1, 3}, even))
	assert.False(t, slice.Any(nil, even))
}
