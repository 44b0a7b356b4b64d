package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"retail-ledger/internal/database"
	"retail-ledger/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BranchRequest defines what the frontend sends when creating a branch
type BranchRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// --- GET: /api/branches ---
func GetBranches(c *gin.Context) {
	branches := make([]models.Branch, 0)

	if err := database.DB.Order("created_at desc").Find(&branches).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch branches"})
		return
	}

	c.JSON(http.StatusOK, branches)
}

// --- POST: /api/branches ---
func CreateBranch(c *gin.Context) {
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Branch name is required"})
		return
	}

	branch := models.Branch{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	if err := database.DB.Create(&branch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create branch"})
		return
	}

	c.JSON(http.StatusCreated, branch)
}

// --- PUT: /api/branches/:id ---
// Partial update: only the fields present in the body are touched.
func UpdateBranch(c *gin.Context) {
	id := c.Param("id")

	var branch models.Branch
	if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch branch"})
		return
	}

	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updates := map[string]interface{}{}
	for _, key := range []string{"name", "address", "phone", "email"} {
		if value, ok := input[key]; ok {
			updates[key] = value
		}
	}
	if value, ok := updates["name"]; ok {
		name, _ := value.(string)
		if strings.TrimSpace(name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Branch name is required"})
			return
		}
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&branch).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update branch"})
			return
		}
	}

	// return the record as stored
	if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch branch"})
		return
	}
	c.JSON(http.StatusOK, branch)
}

// --- DELETE: /api/branches/:id ---
// Removes the branch, then every sale (and its line items) that referenced
// it. The two writes are not wrapped in a transaction: if the sale cleanup
// fails after the branch row is gone, the orphaned sales survive and the
// caller gets a 500. Deleting an id that no longer exists is a no-op.
func DeleteBranch(c *gin.Context) {
	id := c.Param("id")

	if err := database.DB.Delete(&models.Branch{}, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete branch"})
		return
	}

	var saleIDs []string
	if err := database.DB.Model(&models.Sale{}).Where("branch_id = ?", id).Pluck("id", &saleIDs).Error; err != nil {
		log.Printf("branch %s deleted but its sales could not be listed: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Branch deleted but sale cleanup failed"})
		return
	}
	if len(saleIDs) > 0 {
		if err := database.DB.Where("sale_id IN ?", saleIDs).Delete(&models.SaleItem{}).Error; err != nil {
			log.Printf("branch %s deleted but sale items survived: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Branch deleted but sale cleanup failed"})
			return
		}
		if err := database.DB.Where("branch_id = ?", id).Delete(&models.Sale{}).Error; err != nil {
			log.Printf("branch %s deleted but its sales survived: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Branch deleted but sale cleanup failed"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
