package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"retail-ledger/internal/database"
	"retail-ledger/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SaleItemRequest is one line of the cart as the frontend sends it.
// Quantities and prices are never cross-checked against the sale totals.
type SaleItemRequest struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	UnitCost  float64 `json:"unitCost"`
}

// SaleRequest defines what the frontend sends when recording a sale.
// Total, CostTotal and Profit are computed client-side and stored verbatim.
type SaleRequest struct {
	BranchID  string            `json:"branchId"`
	Date      string            `json:"date"`
	Items     []SaleItemRequest `json:"items"`
	Total     float64           `json:"total"`
	CostTotal float64           `json:"costTotal"`
	Profit    float64           `json:"profit"`
	Category  string            `json:"category"`
}

// parseSaleDate accepts the frontend's plain "2024-03-01" dates as well as
// full RFC3339 timestamps.
func parseSaleDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// --- GET: /api/sales?branchId=&from=&to= ---
// All filters are optional and combinable. from/to are inclusive calendar
// dates. Each result carries its branch record so the frontend can show the
// branch name without a second request.
func GetSales(c *gin.Context) {
	query := database.DB.Preload("Branch").Preload("Items")

	if branchID := c.Query("branchId"); branchID != "" {
		query = query.Where("branch_id = ?", branchID)
	}
	if from := c.Query("from"); from != "" {
		t, err := parseSaleDate(from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date"})
			return
		}
		query = query.Where("date >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := parseSaleDate(to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date"})
			return
		}
		// inclusive upper bound, whole day
		query = query.Where("date < ?", t.AddDate(0, 0, 1))
	}

	sales := make([]models.Sale, 0)
	if err := query.Order("date desc").Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}

	c.JSON(http.StatusOK, sales)
}

// --- POST: /api/sales ---
func CreateSale(c *gin.Context) {
	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if strings.TrimSpace(req.BranchID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Branch is required"})
		return
	}
	if strings.TrimSpace(req.Date) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date is required"})
		return
	}
	date, err := parseSaleDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	// The schema carries no foreign key, so the reference is checked here.
	var branch models.Branch
	if err := database.DB.First(&branch, "id = ?", req.BranchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Branch does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify branch"})
		return
	}

	items := make([]models.SaleItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.SaleItem{
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			UnitCost:  item.UnitCost,
		})
	}

	sale := models.Sale{
		BranchID:  req.BranchID,
		Date:      date,
		Items:     items,
		Total:     req.Total,
		CostTotal: req.CostTotal,
		Profit:    req.Profit,
		Category:  req.Category,
	}
	if err := database.DB.Create(&sale).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale"})
		return
	}

	c.JSON(http.StatusCreated, sale)
}
