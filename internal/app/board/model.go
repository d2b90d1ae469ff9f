package board

import (
	"time"

	"gorm.io/datatypes"
)

// List is embedded in the board document. Cards holds ordered card ids;
// a card id appears in at most one list of the board at a time.
type List struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Cards []string `json:"cards"`
}

// Board is the document aggregate: the row embeds its ordered lists and
// its participant set as JSONB.
type Board struct {
	ID           string                      `json:"id" gorm:"primaryKey;type:char(24)"`
	Title        string                      `json:"title" gorm:"not null"`
	Lists        datatypes.JSONSlice[List]   `json:"lists" gorm:"type:jsonb;not null;default:'[]'"`
	Participants datatypes.JSONSlice[string] `json:"participants" gorm:"type:jsonb;not null;default:'[]'"`
	Creator      string                      `json:"creator" gorm:"type:char(24);index"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

func (b *Board) HasParticipant(userID string) bool {
	for _, p := range b.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// List returns a pointer into the Lists slice, or nil when absent. The
// pointer is invalidated by appends or removals.
func (b *Board) List(listID string) *List {
	for i := range b.Lists {
		if b.Lists[i].ID == listID {
			return &b.Lists[i]
		}
	}
	return nil
}

// RemoveList splices the list out of the sequence, preserving the order
// of the remaining lists.
func (b *Board) RemoveList(listID string) bool {
	for i := range b.Lists {
		if b.Lists[i].ID == listID {
			b.Lists = append(b.Lists[:i], b.Lists[i+1:]...)
			return true
		}
	}
	return false
}

func (l *List) IndexOfCard(cardID string) int {
	for i, id := range l.Cards {
		if id == cardID {
			return i
		}
	}
	return -1
}

// RemoveCard removes cardID from the list. hint is the position claimed
// by the caller; it is only trusted when it actually holds cardID,
// otherwise the list is searched, so a stale client index never removes
// the wrong card.
func (l *List) RemoveCard(cardID string, hint int) bool {
	i := -1
	if hint >= 0 && hint < len(l.Cards) && l.Cards[hint] == cardID {
		i = hint
	} else {
		i = l.IndexOfCard(cardID)
	}
	if i == -1 {
		return false
	}
	l.Cards = append(l.Cards[:i], l.Cards[i+1:]...)
	return true
}

// InsertCard inserts cardID at index, shifting later entries right. An
// out-of-bounds index is clamped to the array bounds.
func (l *List) InsertCard(cardID string, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(l.Cards) {
		index = len(l.Cards)
	}
	l.Cards = append(l.Cards, "")
	copy(l.Cards[index+1:], l.Cards[index:])
	l.Cards[index] = cardID
}

// CardDocument is a resolved card reference, used when board reads
// populate list card ids into full documents. Kept here so the card
// package can implement CardFinder without an import cycle.
type CardDocument struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	BoardID   string    `json:"boardId"`
	ListID    string    `json:"listId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PopulatedList struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Cards []CardDocument `json:"cards"`
}

// PopulatedBoard is the GET /boards/:id response shape: each list's card
// ids resolved to full card documents, in list order.
type PopulatedBoard struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Lists        []PopulatedList `json:"lists"`
	Participants []string        `json:"participants"`
	Creator      string          `json:"creator"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type CreateBoardRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateBoardRequest struct {
	Title string `json:"title" binding:"required"`
}
