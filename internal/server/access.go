package server

import (
	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// Members of a board (and its owner) may read it and work on its tasks.
// Only the owner may update or delete the board itself.

func (s *Server) memberBoard(c *gin.Context, boardID string) (*models.Board, error) {
	board, err := s.store.GetBoardByID(c.Request.Context(), boardID)
	if err != nil {
		return nil, lookup(err, errBoardNotFound)
	}
	if !board.HasMember(currentUserID(c)) {
		return nil, errAccessDenied
	}
	return board, nil
}

func (s *Server) ownedBoard(c *gin.Context, boardID string) (*models.Board, error) {
	board, err := s.memberBoard(c, boardID)
	if err != nil {
		return nil, err
	}
	if board.UserID != currentUserID(c) {
		return nil, forbidden("Only the board owner can do that")
	}
	return board, nil
}

// memberTask loads a task whose board the caller belongs to
func (s *Server) memberTask(c *gin.Context, taskID string) (*models.Task, error) {
	task, err := s.store.GetTaskByID(c.Request.Context(), taskID)
	if err != nil {
		return nil, lookup(err, errTaskNotFound)
	}
	if _, err := s.memberBoard(c, task.BoardID); err != nil {
		return nil, err
	}
	return task, nil
}

// ownComment loads a comment written by the caller
func (s *Server) ownComment(c *gin.Context, commentID string) (*models.Comment, error) {
	comment, err := s.store.GetCommentByID(c.Request.Context(), commentID)
	if err != nil {
		return nil, lookup(err, errCommentNotFound)
	}
	if comment.UserID != currentUserID(c) {
		return nil, forbidden("Only the author can change a comment")
	}
	return comment, nil
}
