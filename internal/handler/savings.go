package handler

import (
	"net/http"

	"startive/internal/ledger"
	"startive/internal/util"

	"github.com/gin-gonic/gin"
)

// SavingsHandler serves the savings dashboard views.
type SavingsHandler struct {
	Ledger *ledger.Service
}

func NewSavingsHandler(svc *ledger.Service) *SavingsHandler {
	return &SavingsHandler{Ledger: svc}
}

// Overview returns the total, the daily time series with cumulative sum,
// and the per-bucket allocation breakdown.
func (h *SavingsHandler) Overview(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	totalCent, err := h.Ledger.TotalSavingsCent(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query savings")
		return
	}

	series, err := h.Ledger.SavingsByDate(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query savings")
		return
	}

	breakdown, err := h.Ledger.AllocationBreakdown(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to query savings")
		return
	}

	type dailyResp struct {
		Date       string `json:"date"`
		Total      string `json:"total"`
		Cumulative string `json:"cumulative"`
	}
	daily := make([]dailyResp, 0, len(series))
	for _, p := range series {
		daily = append(daily, dailyResp{
			Date:       p.Date,
			Total:      util.FormatCent(p.TotalCent),
			Cumulative: util.FormatCent(p.CumulativeCent),
		})
	}

	allocation := make(map[string]string, len(breakdown))
	for bucket, cent := range breakdown {
		allocation[bucket] = util.FormatCent(cent)
	}

	util.Success(c, util.Response{
		"total":      util.FormatCent(totalCent),
		"total_cent": totalCent,
		"by_date":    daily,
		"allocation": allocation,
	})
}
