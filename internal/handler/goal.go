package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"startive/internal/ledger"
	"startive/internal/models"
	"startive/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GoalHandler serves savings-goal CRUD and funding.
type GoalHandler struct {
	DB     *gorm.DB
	Ledger *ledger.Service
}

func NewGoalHandler(db *gorm.DB, svc *ledger.Service) *GoalHandler {
	return &GoalHandler{DB: db, Ledger: svc}
}

type createGoalReq struct {
	Name         string `json:"name" binding:"required,max=64"`
	TargetAmount string `json:"target_amount" binding:"required"`
	Deadline     string `json:"deadline"` // optional, YYYY-MM-DD
}

type goalResp struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	TargetAmount  string     `json:"target_amount"`
	CurrentAmount string     `json:"current_amount"`
	Progress      float64    `json:"progress"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toGoalResp(g ledger.GoalProgress) goalResp {
	return goalResp{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  util.FormatCent(g.TargetCent),
		CurrentAmount: util.FormatCent(g.CurrentCent),
		Progress:      g.Progress,
		Deadline:      g.Deadline,
		CreatedAt:     g.CreatedAt,
	}
}

func (h *GoalHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req createGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := util.ValidateGoalName(req.Name); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "goal name is required")
		return
	}

	targetCent, err := util.ParseAmountCent(req.TargetAmount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "please enter a valid target amount")
		return
	}
	if err := util.ValidateAmountCent(targetCent); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "target amount must be positive")
		return
	}

	var deadline *time.Time
	if req.Deadline != "" {
		if err := util.ValidateDate(req.Deadline); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "deadline must be YYYY-MM-DD")
			return
		}
		d, _ := time.Parse("2006-01-02", req.Deadline)
		deadline = &d
	}

	goal := models.Goal{
		UserID:     user.ID,
		Name:       req.Name,
		TargetCent: targetCent,
		Deadline:   deadline,
	}
	if err := h.DB.Create(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save goal")
		return
	}

	util.Success(c, util.Response{
		"goal": toGoalResp(ledger.GoalProgress{Goal: goal, Progress: ledger.Progress(goal.CurrentCent, goal.TargetCent)}),
	})
}

func (h *GoalHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	goals, err := h.Ledger.GoalProgressByUser(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query goals")
		return
	}

	items := make([]goalResp, 0, len(goals))
	for _, g := range goals {
		items = append(items, toGoalResp(g))
	}

	util.Success(c, util.Response{
		"items": items,
	})
}

type fundGoalReq struct {
	Amount string `json:"amount" binding:"required"`
}

// Fund adds money to a goal. Funding is always explicit; round-ups never
// flow into goals on their own.
func (h *GoalHandler) Fund(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid goal id")
		return
	}

	var req fundGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	amountCent, err := util.ParseAmountCent(req.Amount)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "please enter a valid amount")
		return
	}
	if err := util.ValidateAmountCent(amountCent); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "please enter a valid amount")
		return
	}

	// only the owner's goal can be funded
	var goal models.Goal
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&goal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "goal not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query goal")
		}
		return
	}

	goal.CurrentCent += amountCent
	if err := h.DB.Save(&goal).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save goal")
		return
	}

	util.Success(c, util.Response{
		"goal": toGoalResp(ledger.GoalProgress{Goal: goal, Progress: ledger.Progress(goal.CurrentCent, goal.TargetCent)}),
	})
}
