package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"startive/internal/ledger"
	"startive/internal/models"
	"startive/internal/roundup"
	"startive/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler serves the transaction submission pipeline
// (round-up computation, allocation draw, savings sweep) and the
// transaction reads.
type TransactionHandler struct {
	DB       *gorm.DB
	Sampler  *roundup.Sampler
	Ledger   *ledger.Service
	PageSize int
}

func NewTransactionHandler(db *gorm.DB, sampler *roundup.Sampler, svc *ledger.Service, pageSize int) *TransactionHandler {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &TransactionHandler{
		DB:       db,
		Sampler:  sampler,
		Ledger:   svc,
		PageSize: pageSize,
	}
}

// ---------- request/response shapes ----------

type createTransactionReq struct {
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category" binding:"required,max=32"`
	Description string `json:"description" binding:"max=255"`
	OccurredAt  string `json:"occurred_at"`
}

type transactionResp struct {
	ID          uint      `json:"id"`
	Amount      string    `json:"amount"`
	AmountCent  int64     `json:"amount_cent"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Roundup     string    `json:"roundup_amount"`
	RoundupCent int64     `json:"roundup_cent"`
	OccurredAt  time.Time `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTransactionResp(t *models.Transaction) transactionResp {
	return transactionResp{
		ID:          t.ID,
		Amount:      util.FormatCent(t.AmountCent),
		AmountCent:  t.AmountCent,
		Category:    t.Category,
		Description: t.Description,
		Roundup:     util.FormatCent(t.RoundupCent),
		RoundupCent: t.RoundupCent,
		OccurredAt:  t.OccurredAt,
		CreatedAt:   t.CreatedAt,
	}
}

func parseOccurredAt(s string) time.Time {
	occurredAt := time.Now()
	if s == "" {
		return occurredAt
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return occurredAt
}

// ---------- submit a transaction ----------

// Create records the spend, computes its round-up once, and, when the
// round-up is positive, sweeps it into a savings entry whose bucket is
// drawn from the user's risk tier. Both rows commit in one database
// transaction.
func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if err := util.ValidateCategory(req.Category); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "please choose a category")
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

	occurredAt := parseOccurredAt(req.OccurredAt)
	if occurredAt.Format("2006-01-02") > time.Now().Format("2006-01-02") {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "transaction date cannot be in the future")
		return
	}

	roundupCent := roundup.ComputeCent(amountCent)

	tx := models.Transaction{
		UserID:      user.ID,
		AmountCent:  amountCent,
		Category:    req.Category,
		Description: strings.TrimSpace(req.Description),
		RoundupCent: roundupCent,
		OccurredAt:  occurredAt,
	}

	var saving *models.SavingsEntry
	err = h.DB.Transaction(func(txDB *gorm.DB) error {
		if err := txDB.Create(&tx).Error; err != nil {
			return err
		}
		if roundupCent <= 0 {
			return nil
		}
		allocation := h.Sampler.Sample(user.RiskPreference)
		entry := models.SavingsEntry{
			UserID:         user.ID,
			AmountCent:     roundupCent,
			Source:         models.SavingsEntrySourceRoundup,
			AllocationType: string(allocation),
			OccurredAt:     occurredAt,
		}
		if err := txDB.Create(&entry).Error; err != nil {
			return err
		}
		saving = &entry
		return nil
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to save, please retry")
		return
	}

	resp := util.Response{
		"transaction": toTransactionResp(&tx),
	}
	if saving != nil {
		resp["saving"] = gin.H{
			"id":              saving.ID,
			"amount":          util.FormatCent(saving.AmountCent),
			"source":          saving.Source,
			"allocation_type": saving.AllocationType,
		}
	}
	util.Success(c, resp)
}

// ---------- list transactions ----------

func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.PageSize)))
	if limit <= 0 || limit > 100 {
		limit = h.PageSize
	}

	transactions, err := h.Ledger.RecentTransactions(user.ID, limit)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query transactions")
		return
	}

	items := make([]transactionResp, 0, len(transactions))
	for i := range transactions {
		items = append(items, toTransactionResp(&transactions[i]))
	}

	util.Success(c, util.Response{
		"items": items,
		"limit": limit,
	})
}

// ---------- spending analysis ----------

func (h *TransactionHandler) Analysis(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	analysis, err := h.Ledger.AnalyzeSpending(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to analyze spending")
		return
	}
	if analysis == nil {
		util.Success(c, util.Response{
			"message": "No spending data available.",
		})
		return
	}

	util.Success(c, util.Response{
		"total_spent":      util.FormatCent(analysis.TotalCent),
		"avg_transaction":  util.FormatCent(analysis.AverageCent),
		"highest_category": analysis.HighestCategory,
		"clusters":         analysis.ClusterCounts,
	})
}
