package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewdeck.io/notifier/internal/notification"
	apperrors "crewdeck.io/notifier/internal/pkg/errors"
)

// GetPreferences handles GET /preferences. Users without a stored record get
// the default view with every category enabled.
func (s *Server) GetPreferences(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	prefs, err := s.prefs.Get(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences handles PUT /preferences with a partial update. The
// first update creates the stored record.
func (s *Server) UpdatePreferences(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var upd notification.PrefsUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeValidationFailed, err.Error()))
		return
	}

	prefs, err := s.prefs.Update(c.Request.Context(), userID, upd)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}
