package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/sksagor/investment-tracker-backend/internal/api/response"
	"github.com/sksagor/investment-tracker-backend/internal/apperrors"
	"github.com/sksagor/investment-tracker-backend/internal/service"
)

// maxImportSize caps import payloads at 10 MiB.
const maxImportSize = 10 << 20

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
	exportService *service.ExportService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService, exportService *service.ExportService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
		exportService: exportService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	if err := h.systemService.CheckHealth(); err != nil {
		resp := HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		}
		response.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp := HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}
	response.RespondJSON(w, http.StatusOK, resp)
}

// VersionResponse represents the version check response.
type VersionResponse struct {
	AppVersion    string `json:"app_version"`
	ExportEnabled bool   `json:"export_enabled"`
}

// Version handles GET requests to retrieve version information.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionResponse
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	resp := VersionResponse{
		AppVersion:    h.systemService.CheckVersion(),
		ExportEnabled: h.exportService.Enabled(),
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// Export handles GET requests to download an encrypted portfolio backup.
// The body is a fernet token covering every stored investment.
//
// Endpoint: GET /api/system/export
// Response: 200 OK with the token as application/octet-stream
// Error: 503 Service Unavailable if no export key is configured
// Error: 500 Internal Server Error if the export fails
func (h *SystemHandler) Export(w http.ResponseWriter, _ *http.Request) {
	token, err := h.exportService.Export()
	if err != nil {
		if errors.Is(err, apperrors.ErrExportDisabled) {
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrExportDisabled.Error(), nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to export investments", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="investments.export"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(token); err != nil {
		return
	}
}

// ImportResponse reports how many records an import restored.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// Import handles POST requests to restore investments from an encrypted
// backup token. The existing store contents are replaced in a single
// transaction; a failed import leaves the store untouched.
//
// Endpoint: POST /api/system/import
// Request Body: the fernet token produced by Export
// Response: 200 OK with ImportResponse
// Error: 400 Bad Request if the token cannot be verified or decrypted
// Error: 503 Service Unavailable if no export key is configured
// Error: 500 Internal Server Error if the restore fails
func (h *SystemHandler) Import(w http.ResponseWriter, r *http.Request) {
	token, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "failed to read request body", err.Error())
		return
	}

	imported, err := h.exportService.Import(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrExportDisabled):
			response.RespondError(w, http.StatusServiceUnavailable, apperrors.ErrExportDisabled.Error(), nil)
		case errors.Is(err, apperrors.ErrInvalidExportToken):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidExportToken.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to import investments", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusOK, ImportResponse{Imported: imported})
}
