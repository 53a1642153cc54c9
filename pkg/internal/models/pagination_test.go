package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFrom(t *testing.T) {
	page := PageFrom([]int{1, 2}, 0, 2, 5)
	assert.Equal(t, 3, page.TotalPages)
	assert.EqualValues(t, 5, page.TotalElements)

	exact := PageFrom([]int{1, 2}, 1, 2, 4)
	assert.Equal(t, 2, exact.TotalPages)

	empty := PageFrom([]int{}, 0, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)

	zeroSize := PageFrom([]int{}, 0, 0, 3)
	assert.Equal(t, 0, zeroSize.TotalPages)
}
