package list

type CreateListRequest struct {
	BoardID string `json:"boardId" binding:"required"`
	Title   string `json:"title" binding:"required"`
}

type UpdateListRequest struct {
	BoardID string `json:"boardId" binding:"required"`
	Title   string `json:"title" binding:"required"`
}

type DeleteListRequest struct {
	BoardID string `json:"boardId" binding:"required"`
}
