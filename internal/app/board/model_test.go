package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_List(t *testing.T) {
	b := &Board{
		Lists: []List{
			{ID: "aaaaaaaaaaaaaaaaaaaaaaaa", Title: "To Do"},
			{ID: "bbbbbbbbbbbbbbbbbbbbbbbb", Title: "Done"},
		},
	}

	l := b.List("bbbbbbbbbbbbbbbbbbbbbbbb")
	require.NotNil(t, l)
	assert.Equal(t, "Done", l.Title)

	assert.Nil(t, b.List("cccccccccccccccccccccccc"))
}

func TestBoard_List_ReturnsPointerIntoAggregate(t *testing.T) {
	b := &Board{Lists: []List{{ID: "l1", Title: "Old"}}}

	b.List("l1").Title = "New"

	assert.Equal(t, "New", b.Lists[0].Title)
}

func TestBoard_RemoveList(t *testing.T) {
	b := &Board{
		Lists: []List{
			{ID: "l1"}, {ID: "l2"}, {ID: "l3"},
		},
	}

	require.True(t, b.RemoveList("l2"))
	require.Len(t, b.Lists, 2)
	assert.Equal(t, "l1", b.Lists[0].ID)
	assert.Equal(t, "l3", b.Lists[1].ID)

	assert.False(t, b.RemoveList("l2"))
}

func TestBoard_HasParticipant(t *testing.T) {
	b := &Board{Participants: []string{"u1", "u2"}}

	assert.True(t, b.HasParticipant("u1"))
	assert.False(t, b.HasParticipant("u3"))
}

func TestList_RemoveCard_TrustsCorrectHint(t *testing.T) {
	l := &List{Cards: []string{"c1", "c2", "c3"}}

	require.True(t, l.RemoveCard("c2", 1))
	assert.Equal(t, []string{"c1", "c3"}, l.Cards)
}

func TestList_RemoveCard_IgnoresStaleHint(t *testing.T) {
	// The hint points at a different card; removal must still take out
	// the card being moved, not the one at the hinted position.
	l := &List{Cards: []string{"c1", "c2", "c3"}}

	require.True(t, l.RemoveCard("c3", 0))
	assert.Equal(t, []string{"c1", "c2"}, l.Cards)
}

func TestList_RemoveCard_OutOfRangeHint(t *testing.T) {
	l := &List{Cards: []string{"c1", "c2"}}

	require.True(t, l.RemoveCard("c1", 99))
	assert.Equal(t, []string{"c2"}, l.Cards)
}

func TestList_RemoveCard_Absent(t *testing.T) {
	l := &List{Cards: []string{"c1"}}

	assert.False(t, l.RemoveCard("c9", 0))
	assert.Equal(t, []string{"c1"}, l.Cards)
}

func TestList_InsertCard(t *testing.T) {
	tests := []struct {
		name  string
		cards []string
		index int
		want  []string
	}{
		{"front", []string{"c1", "c2"}, 0, []string{"new", "c1", "c2"}},
		{"middle", []string{"c1", "c2"}, 1, []string{"c1", "new", "c2"}},
		{"end", []string{"c1", "c2"}, 2, []string{"c1", "c2", "new"}},
		{"clamped high", []string{"c1"}, 10, []string{"c1", "new"}},
		{"clamped negative", []string{"c1"}, -3, []string{"new", "c1"}},
		{"empty list", nil, 0, []string{"new"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &List{Cards: tt.cards}
			l.InsertCard("new", tt.index)
			assert.Equal(t, tt.want, l.Cards)
		})
	}
}

func TestMoveBetweenLists(t *testing.T) {
	b := &Board{
		Lists: []List{
			{ID: "l1", Cards: []string{"c1", "c2", "c3"}},
			{ID: "l2", Cards: []string{"c4"}},
		},
	}

	src := b.List("l1")
	dst := b.List("l2")
	require.True(t, src.RemoveCard("c2", 1))
	dst.InsertCard("c2", 0)

	assert.Equal(t, []string{"c1", "c3"}, b.Lists[0].Cards)
	assert.Equal(t, []string{"c2", "c4"}, b.Lists[1].Cards)
	assert.Equal(t, -1, b.Lists[0].IndexOfCard("c2"))
	assert.Equal(t, 0, b.Lists[1].IndexOfCard("c2"))
}

func TestMoveWithinSameList(t *testing.T) {
	// Same-list reorder: source and destination resolve to the same
	// list, and the destination index applies to the post-removal array.
	b := &Board{
		Lists: []List{
			{ID: "l1", Cards: []string{"c1", "c2", "c3"}},
		},
	}

	src := b.List("l1")
	dst := b.List("l1")
	require.True(t, src.RemoveCard("c1", 0))
	dst.InsertCard("c1", 2)

	assert.Equal(t, []string{"c2", "c3", "c1"}, b.Lists[0].Cards)
}

func TestPopulate(t *testing.T) {
	b := &Board{
		ID:    "b1",
		Title: "Board 1",
		Lists: []List{
			{ID: "l1", Title: "To Do", Cards: []string{"c2", "c1"}},
			{ID: "l2", Title: "Done", Cards: []string{}},
		},
		Participants: []string{"u1"},
		Creator:      "u1",
	}
	cards := []CardDocument{
		{ID: "c1", Title: "Card 1", BoardID: "b1", ListID: "l1"},
		{ID: "c2", Title: "Card 2", BoardID: "b1", ListID: "l1"},
	}

	p := populate(b, cards)

	require.Len(t, p.Lists, 2)
	require.Len(t, p.Lists[0].Cards, 2)
	// Card order follows the list's card sequence, not fetch order.
	assert.Equal(t, "Card 2", p.Lists[0].Cards[0].Title)
	assert.Equal(t, "Card 1", p.Lists[0].Cards[1].Title)
	assert.Empty(t, p.Lists[1].Cards)
}

func TestPopulate_SkipsDanglingReferences(t *testing.T) {
	b := &Board{
		Lists: []List{{ID: "l1", Cards: []string{"gone", "c1"}}},
	}
	cards := []CardDocument{{ID: "c1", Title: "Card 1"}}

	p := populate(b, cards)

	require.Len(t, p.Lists[0].Cards, 1)
	assert.Equal(t, "c1", p.Lists[0].Cards[0].ID)
}
