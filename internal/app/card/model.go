package card

import "time"

type Card struct {
	ID        string    `json:"id" gorm:"primaryKey;type:char(24)"`
	Title     string    `json:"title" gorm:"not null"`
	BoardID   string    `json:"boardId" gorm:"type:char(24);not null;index"`
	ListID    string    `json:"listId" gorm:"type:char(24);not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateCardRequest struct {
	BoardID string `json:"boardId" binding:"required"`
	ListID  string `json:"listId" binding:"required"`
	Title   string `json:"title" binding:"required"`
}

// MoveTarget names a list and a position within it. The source index is
// treated as a hint; the destination index is where the card ends up.
type MoveTarget struct {
	ListID string `json:"listId" binding:"required"`
	Index  int    `json:"index"`
}

// UpdateCardRequest carries either a rename ({boardId, title}) or a move
// ({boardId, source, destination}). Exactly one of the two shapes must
// be present.
type UpdateCardRequest struct {
	BoardID     string      `json:"boardId" binding:"required"`
	Title       string      `json:"title"`
	Source      *MoveTarget `json:"source"`
	Destination *MoveTarget `json:"destination"`
}

type DeleteCardRequest struct {
	BoardID string `json:"boardId" binding:"required"`
	ListID  string `json:"listId" binding:"required"`
}
