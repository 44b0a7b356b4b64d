package handlers

import (
	"errors"
	"html/template"
	"net/http"

	"retail-ledger/internal/database"
	"retail-ledger/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SettingsRequest is a typed partial update: a nil field was not present in
// the request body and the stored value is preserved. There is no "reset to
// default" through this endpoint.
type SettingsRequest struct {
	CompanyName        *string  `json:"companyName"`
	Currency           *string  `json:"currency"`
	DateFormat         *string  `json:"dateFormat"`
	ItemsPerPage       *int     `json:"itemsPerPage"`
	DefaultCostPercent *float64 `json:"defaultCostPercent"`
}

// The HTML view of the settings, for clients whose Accept header ranks HTML
// above JSON. Compiled in so no template directory has to ship with the binary.
var settingsTmpl = template.Must(template.New("settings").Parse(`<!DOCTYPE html>
<html>
<head><title>Settings</title></head>
<body>
<h1>Settings</h1>
<table border="1" cellpadding="6">
<tr><th>Setting</th><th>Value</th></tr>
<tr><td>Company Name</td><td>{{.CompanyName}}</td></tr>
<tr><td>Currency</td><td>{{.Currency}}</td></tr>
<tr><td>Date Format</td><td>{{.DateFormat}}</td></tr>
<tr><td>Items Per Page</td><td>{{.ItemsPerPage}}</td></tr>
<tr><td>Default Cost Percent</td><td>{{.DefaultCostPercent}}</td></tr>
</table>
</body>
</html>
`))

// loadSettings returns the singleton row, creating it with defaults on first
// access. The fixed primary key makes the create race-safe: a loser of a
// concurrent first access gets a duplicate-key error and re-reads.
func loadSettings() (models.Settings, error) {
	settings := models.DefaultSettings()
	err := database.DB.Where("id = ?", models.SettingsID).FirstOrCreate(&settings).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = database.DB.First(&settings, "id = ?", models.SettingsID).Error
	}
	return settings, err
}

// --- GET: /api/settings ---
// The only negotiated endpoint: browsers asking for HTML get a rendered
// table, everything else gets JSON. All other resources are JSON-only.
func GetSettings(c *gin.Context) {
	settings, err := loadSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	switch c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) {
	case gin.MIMEHTML:
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := settingsTmpl.Execute(c.Writer, settings); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render settings"})
		}
	default:
		c.JSON(http.StatusOK, settings)
	}
}

// --- PUT: /api/settings ---
// Upsert: the row is created with defaults if missing, then only the fields
// present in the body are merged in.
func UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	settings, err := loadSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	updates := map[string]interface{}{}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.Currency != nil {
		updates["currency"] = *req.Currency
	}
	if req.DateFormat != nil {
		updates["date_format"] = *req.DateFormat
	}
	if req.ItemsPerPage != nil {
		updates["items_per_page"] = *req.ItemsPerPage
	}
	if req.DefaultCostPercent != nil {
		updates["default_cost_percent"] = *req.DefaultCostPercent
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&settings).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
	}

	if err := database.DB.First(&settings, "id = ?", models.SettingsID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}
