package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

func (s *Server) handleCreateTask(c *gin.Context) {
	var in models.TaskInput
	if err := c.ShouldBindJSON(&in); err != nil {
		s.fail(c, errInvalidBody)
		return
	}
	if in.Status == "" {
		in.Status = models.StatusTodo
	}
	if in.Priority == "" {
		in.Priority = models.DefaultPriority
	}
	if err := firstError(
		validateTaskTitle(in.Title),
		validateStatus(in.Status),
		validatePriority(in.Priority),
		validateDueDate(in.DueDate),
	); err != nil {
		s.fail(c, err)
		return
	}

	if _, err := s.memberBoard(c, in.BoardID); err != nil {
		s.fail(c, err)
		return
	}
	if err := s.requireUser(c, in.AssignedTo); err != nil {
		s.fail(c, err)
		return
	}

	task, err := s.store.CreateTask(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var upd models.TaskUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		s.fail(c, errInvalidBody)
		return
	}
	var checks []error
	if upd.Title != nil {
		checks = append(checks, validateTaskTitle(*upd.Title))
	}
	if upd.Status != nil {
		checks = append(checks, validateStatus(*upd.Status))
	}
	if upd.Priority != nil {
		checks = append(checks, validatePriority(*upd.Priority))
	}
	if upd.DueDate != nil {
		checks = append(checks, validateDueDate(*upd.DueDate))
	}
	if err := firstError(checks...); err != nil {
		s.fail(c, err)
		return
	}

	task, err := s.memberTask(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	updated, err := s.store.UpdateTask(c.Request.Context(), task.ID, upd)
	if err != nil {
		s.fail(c, lookup(err, errTaskNotFound))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	task, err := s.memberTask(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if err := s.store.DeleteTask(c.Request.Context(), task.ID); err != nil {
		s.fail(c, lookup(err, errTaskNotFound))
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Task deleted"})
}

func (s *Server) handleAssignTask(c *gin.Context) {
	var req models.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, errInvalidBody)
		return
	}

	task, err := s.memberTask(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if err := s.requireUser(c, req.AssignedTo); err != nil {
		s.fail(c, err)
		return
	}

	updated, err := s.store.AssignTask(c.Request.Context(), task.ID, req.AssignedTo)
	if err != nil {
		s.fail(c, lookup(err, errTaskNotFound))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) handleListComments(c *gin.Context) {
	task, err := s.memberTask(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	comments, err := s.store.ListCommentsByTask(c.Request.Context(), task.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// requireUser checks that a non-empty user id refers to an existing account
func (s *Server) requireUser(c *gin.Context, userID string) error {
	if userID == "" {
		return nil
	}
	if _, err := s.store.GetUserByID(c.Request.Context(), userID); err != nil {
		return lookup(err, errUserNotFound)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
