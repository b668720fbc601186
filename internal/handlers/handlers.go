package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shyamganesh19k-droid/Barcode/internal/bom"
	"github.com/shyamganesh19k-droid/Barcode/internal/label"
)

// User-facing messages. The form shows these inline; they never become
// framework error pages.
const (
	msgEnterSKU      = "Please enter a SKU."
	msgBadWorkbook   = "Excel file missing or invalid format."
	msgNoSKUColumn   = "Excel file or SKU column missing."
	msgSKUNotFound   = "SKU not found."
	msgRenderFailure = "Label generation failed."
)

// API wires the label service into Gin.
type API struct {
	service *label.Service
	logger  *zap.Logger
}

func NewAPI(service *label.Service, logger *zap.Logger) *API {
	return &API{service: service, logger: logger}
}

// RegisterRoutes attaches the form, download, and cancel endpoints.
func (a *API) RegisterRoutes(router *gin.Engine) {
	router.GET("/", a.showFormHandler)
	router.POST("/", a.submitFormHandler)
	router.GET("/download/:sku/:mrp", a.downloadHandler)
	router.GET("/cancel", a.cancelHandler)
}

// RequestID tags every request with a UUID, honoring one supplied by the
// caller, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func (a *API) showFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"sku": "", "override": ""})
}

// submitFormHandler handles the lookup/generate form. The page always comes
// back with status 200; problems surface as the error banner.
func (a *API) submitFormHandler(c *gin.Context) {
	sku := strings.TrimSpace(c.PostForm("sku"))
	override := c.PostForm("mrp")
	_, generate := c.GetPostForm("generate")

	view := gin.H{"sku": sku, "override": override}

	var errMsg string
	if sku == "" {
		errMsg = msgEnterSKU
	} else {
		product, err := a.service.Preview(sku)
		switch {
		case err == nil:
			view["product_name"] = product.Description
			if override != "" {
				view["mrp"] = override
			} else {
				view["mrp"] = product.MRP
			}
		case errors.Is(err, bom.ErrSKUNotFound):
			errMsg = msgSKUNotFound
		case errors.Is(err, bom.ErrNoSKUColumn):
			errMsg = msgBadWorkbook
		default:
			a.logger.Error("workbook load failed", zap.Error(err))
			errMsg = msgBadWorkbook
		}
	}

	if generate && errMsg == "" {
		filename, err := a.service.Generate(sku, override)
		if err != nil {
			errMsg = generateErrorMessage(err)
		} else {
			view["label"] = filename
		}
	}

	if errMsg != "" {
		view["error"] = errMsg
	}
	c.HTML(http.StatusOK, "index.html", view)
}

// downloadHandler composes the label once more and returns it as a PDF
// attachment. The mrp path value "NA" means no override.
func (a *API) downloadHandler(c *gin.Context) {
	sku := c.Param("sku")
	override := c.Param("mrp")
	if override == "NA" {
		override = ""
	}

	path, err := a.service.GeneratePDF(sku, override)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, bom.ErrSKUNotFound) {
			status = http.StatusNotFound
		}
		c.String(status, "Error: %s", generateErrorMessage(err))
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

func (a *API) cancelHandler(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

func generateErrorMessage(err error) string {
	switch {
	case errors.Is(err, bom.ErrSKUNotFound):
		return msgSKUNotFound
	case errors.Is(err, bom.ErrNoSKUColumn):
		return msgNoSKUColumn
	default:
		return msgRenderFailure
	}
}
