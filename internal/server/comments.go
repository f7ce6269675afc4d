package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

func (s *Server) handleCreateComment(c *gin.Context) {
	var in models.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, errInvalidBody)
		return
	}
	if err := validateComment(in.Content); err != nil {
		s.fail(c, err)
		return
	}
	if _, err := s.memberTask(c, in.TaskID); err != nil {
		s.fail(c, err)
		return
	}

	comment, err := s.store.CreateComment(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (s *Server) handleUpdateComment(c *gin.Context) {
	var upd models.CommentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		s.fail(c, errInvalidBody)
		return
	}
	if err := validateComment(upd.Content); err != nil {
		s.fail(c, err)
		return
	}

	comment, err := s.ownComment(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	updated, err := s.store.UpdateComment(c.Request.Context(), comment.ID, upd.Content)
	if err != nil {
		s.fail(c, lookup(err, errCommentNotFound))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteComment(c *gin.Context) {
	comment, err := s.ownComment(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if err := s.store.DeleteComment(c.Request.Context(), comment.ID); err != nil {
		s.fail(c, lookup(err, errCommentNotFound))
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Comment deleted"})
}
