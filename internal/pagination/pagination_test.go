package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

func TestPlanSinglePage(t *testing.T) {
	links := Plan(model.SectionUsers, 1, 1)
	require.Len(t, links, 1)
	assert.Equal(t, Link{Kind: KindPage, Section: model.SectionUsers, Page: 1, Active: true}, links[0])
}

func TestPlanMiddle(t *testing.T) {
	links := Plan(model.SectionItems, 5, 10)
	require.Len(t, links, 7)

	assert.Equal(t, KindPrev, links[0].Kind)
	assert.Equal(t, 4, links[0].Page)
	for i, p := range []int{3, 4, 5, 6, 7} {
		l := links[i+1]
		assert.Equal(t, KindPage, l.Kind)
		assert.Equal(t, p, l.Page)
		assert.Equal(t, p == 5, l.Active)
		assert.Equal(t, model.SectionItems, l.Section)
	}
	assert.Equal(t, KindNext, links[6].Kind)
	assert.Equal(t, 6, links[6].Page)
}

func TestPlanEmpty(t *testing.T) {
	assert.Empty(t, Plan(model.SectionReviews, 1, 0))
	assert.Empty(t, Plan(model.SectionReviews, 3, -1))
}

func TestPlanEdges(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{"first of many", 1, 10, "[1] 2 3 ›"},
		{"last of many", 10, 10, "‹ 8 9 [10]"},
		{"second", 2, 3, "‹ 1 [2] 3 ›"},
		{"absent page", 0, 4, "[1] 2 3 ›"},
		{"middle", 5, 10, "‹ 3 4 [5] 6 7 ›"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(Plan(model.SectionMessages, tt.current, tt.total)))
		})
	}
}

func TestPlanIdempotent(t *testing.T) {
	assert.Equal(t, Plan(model.SectionUsers, 4, 9), Plan(model.SectionUsers, 4, 9))
}
