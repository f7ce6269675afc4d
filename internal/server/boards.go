package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

func (s *Server) handleListBoards(c *gin.Context) {
	boards, err := s.store.ListBoardsForUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

func (s *Server) handleCreateBoard(c *gin.Context) {
	var in models.BoardInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, errInvalidBody)
		return
	}
	if err := validateBoardName(in.Name); err != nil {
		s.fail(c, err)
		return
	}
	if err := validateBoardDescription(in.Description); err != nil {
		s.fail(c, err)
		return
	}

	board, err := s.store.CreateBoard(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, board)
}

func (s *Server) handleGetBoard(c *gin.Context) {
	board, err := s.memberBoard(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

func (s *Server) handleUpdateBoard(c *gin.Context) {
	var upd models.BoardUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		s.fail(c, errInvalidBody)
		return
	}
	if upd.Name != nil {
		if err := validateBoardName(*upd.Name); err != nil {
			s.fail(c, err)
			return
		}
	}
	if upd.Description != nil {
		if err := validateBoardDescription(*upd.Description); err != nil {
			s.fail(c, err)
			return
		}
	}

	board, err := s.ownedBoard(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	updated, err := s.store.UpdateBoard(c.Request.Context(), board.ID, upd)
	if err != nil {
		s.fail(c, lookup(err, errBoardNotFound))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteBoard(c *gin.Context) {
	board, err := s.ownedBoard(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if err := s.store.DeleteBoard(c.Request.Context(), board.ID); err != nil {
		s.fail(c, lookup(err, errBoardNotFound))
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Board deleted"})
}

func (s *Server) handleListTasks(c *gin.Context) {
	board, err := s.memberBoard(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	tasks, err := s.store.ListTasksByBoard(c.Request.Context(), board.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleListActivities(c *gin.Context) {
	board, err := s.memberBoard(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	activities, err := s.store.ListActivitiesByBoard(c.Request.Context(), board.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (s *Server) handleCreateActivity(c *gin.Context) {
	var in models.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, errInvalidBody)
		return
	}
	if !in.Action.Valid() {
		s.fail(c, badRequest("Invalid activity action"))
		return
	}
	if _, err := s.memberBoard(c, in.BoardID); err != nil {
		s.fail(c, err)
		return
	}

	activity, err := s.store.CreateActivity(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}
