package handler

import (
	"net/http"
	"strings"

	"startive/internal/advisor"
	"startive/internal/util"

	"github.com/gin-gonic/gin"
)

// AdvisorHandler serves the rule-based financial Q&A endpoint.
type AdvisorHandler struct {
	Advisor *advisor.Advisor
}

func NewAdvisorHandler(a *advisor.Advisor) *AdvisorHandler {
	return &AdvisorHandler{Advisor: a}
}

type askReq struct {
	Question string `json:"question" binding:"required,max=500"`
}

func (h *AdvisorHandler) Ask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "please ask a question")
		return
	}

	answer := h.Advisor.Respond(advisor.Context{
		UserID:         user.ID,
		RiskPreference: user.RiskPreference,
	}, strings.TrimSpace(req.Question))

	util.Success(c, util.Response{
		"question": req.Question,
		"answer":   answer,
	})
}
