package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageBounds(t *testing.T) {
	cases := []struct {
		page  int
		lower int
		upper int
	}{
		{1, 0, 10},
		{2, 10, 20},
		{3, 20, 30},
		{17, 160, 170},
	}
	for _, tc := range cases {
		lower, upper := PageBounds(tc.page)
		assert.Equal(t, tc.lower, lower, "page %d lower", tc.page)
		assert.Equal(t, tc.upper, upper, "page %d upper", tc.page)
	}
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-3"))
	assert.Equal(t, 2, ParsePage("2"))
	assert.Equal(t, 66, ParsePage("66"))
}

func TestPageWindow(t *testing.T) {
	bank := bankOf(25)

	assert.Len(t, pageWindow(bank, 1), 10)
	assert.Len(t, pageWindow(bank, 2), 10)
	assert.Len(t, pageWindow(bank, 3), 5)
	assert.Nil(t, pageWindow(bank, 4))
	assert.Nil(t, pageWindow(nil, 1))

	second := pageWindow(bank, 2)
	assert.Equal(t, 11, second[0].ID)
	assert.Equal(t, 20, second[9].ID)
}
