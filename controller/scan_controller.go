package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	localCache "scanner/cache"
	"scanner/config"
	"scanner/customerrors"
	"scanner/model"
	"scanner/service"
	"scanner/validator"
)

type ScanController struct {
	scanSvc      service.ScanService
	watchlistSvc service.WatchlistService
	exportSvc    service.ExportService
	cfg          *config.SystemConfigs
}

func NewScanController(scanSvc service.ScanService, watchlistSvc service.WatchlistService, exportSvc service.ExportService, cfg *config.SystemConfigs) *ScanController {
	return &ScanController{
		scanSvc:      scanSvc,
		watchlistSvc: watchlistSvc,
		exportSvc:    exportSvc,
		cfg:          cfg,
	}
}

func (ctrl *ScanController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/scan", ctrl.runScan)
	router.GET("/scan/files", ctrl.listFiles)
	router.GET("/scan/export", ctrl.exportLastScan)
}

// runScan executes a liquidity-grab scan over the selected watchlists
// @Summary      Run Scan
// @Description  Scan the selected watchlist files for liquidity-grab signals within the last N days.
// @Tags         Scan
// @Accept       json
// @Produce      json
// @Param        request  body  model.ScanRequest  true  "Scan parameters"
// @Success      200  {object}  model.Response
// @Failure      400  {object}  model.Response
// @Router       /scan [post]
func (ctrl *ScanController) runScan(ctx *gin.Context) {
	var request model.ScanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
		return
	}

	ctrl.applyDefaults(&request)
	if issues := validator.ScanRequestShape.Validate(&request); len(issues) > 0 {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(validator.FirstIssue(issues)))
		return
	}

	result, err := ctrl.scanSvc.Run(ctx.Request.Context(), request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, NewResponse(result, "Scan completed"))
}

// listFiles lists the watchlist files available for a scan type
// @Summary      List Watchlist Files
// @Description  List the CSV watchlist files available for the given scan type.
// @Tags         Scan
// @Produce      json
// @Param        type  query  string  false  "Scan type"  Enums(INDEX, SECTOR)  default(INDEX)
// @Success      200  {object}  model.Response
// @Failure      400  {object}  model.Response
// @Router       /scan/files [get]
func (ctrl *ScanController) listFiles(ctx *gin.Context) {
	scanType := ctx.DefaultQuery("type", string(model.ScanIndex))

	files, err := ctrl.watchlistSvc.ListFiles(scanType)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, NewResponse(files, "Watchlist files found"))
}

// exportLastScan downloads the most recent scan result
// @Summary      Export Scan Result
// @Description  Serialize the most recent scan result as CSV, JSON or TXT.
// @Tags         Scan
// @Produce      plain
// @Param        format  query  string  false  "Export format"  Enums(csv, json, txt)  default(csv)
// @Success      200  {string}  string
// @Failure      404  {object}  model.Response
// @Router       /scan/export [get]
func (ctrl *ScanController) exportLastScan(ctx *gin.Context) {
	format := model.ExportFormat(ctx.DefaultQuery("format", string(model.ExportCSV)))

	result, found := localCache.GetLastScan()
	if !found {
		ctx.JSON(http.StatusNotFound, NewErrorResponse(customerrors.ErrNoScanResult.Error()))
		return
	}

	data, contentType, err := ctrl.exportSvc.Export(result, format)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, customerrors.ErrUnknownExportFormat) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, NewErrorResponse(err.Error()))
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=signals.%s", format))
	ctx.Data(http.StatusOK, contentType, data)
}

// applyDefaults backfills tuning fields the caller omitted from config.
func (ctrl *ScanController) applyDefaults(request *model.ScanRequest) {
	cfg := ctrl.cfg.Config
	if request.ScanType == "" {
		request.ScanType = string(model.ScanIndex)
	}
	if request.SwingLeft == 0 {
		request.SwingLeft = cfg.SwingLeft
	}
	if request.SwingRight == 0 {
		request.SwingRight = cfg.SwingRight
	}
	if request.MinDepthPercent == 0 {
		request.MinDepthPercent = cfg.MinDepthPercent
	}
	if request.LookbackBars == 0 {
		request.LookbackBars = cfg.LookbackBars
	}
	if request.Days == 0 {
		request.Days = cfg.AlertDays
	}
}
