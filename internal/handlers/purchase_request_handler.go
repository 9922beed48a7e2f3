package handlers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/tealeg/xlsx"

	"clutchzone/internal/models"
	"clutchzone/internal/services"
)

type PurchaseRequestHandler struct {
	Service *services.PurchaseRequestService
}

// CreateRequest is the public intake endpoint behind every "I'm interested"
// button in the SPA.
func (h *PurchaseRequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateRequest(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *PurchaseRequestHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	filter := models.PurchaseRequestFilter{
		Status: r.URL.Query().Get("status"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	}
	resp, err := h.Service.GetRequests(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PurchaseRequestHandler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	req, err := h.Service.GetRequestByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *PurchaseRequestHandler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	updated, err := h.Service.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PurchaseRequestHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	id, err := getIntParam(r, "id")
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Service.DeleteRequest(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

var exportHeader = []string{"ID", "Item Type", "Item", "Name", "Phone", "Email", "Message", "Status", "Created At"}

// ExportRequests downloads the full request log. ?format=xlsx produces a
// spreadsheet, anything else falls back to CSV.
func (h *PurchaseRequestHandler) ExportRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Service.GetAllForExport(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "xlsx" {
		h.exportXLSX(w, requests)
		return
	}
	h.exportCSV(w, requests)
}

func (h *PurchaseRequestHandler) exportCSV(w http.ResponseWriter, requests []models.PurchaseRequest) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="purchase_requests.csv"`)

	cw := csv.NewWriter(w)
	cw.Write(exportHeader)
	for _, req := range requests {
		cw.Write(requestExportRow(req))
	}
	cw.Flush()
}

func (h *PurchaseRequestHandler) exportXLSX(w http.ResponseWriter, requests []models.PurchaseRequest) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Requests")
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	header := sheet.AddRow()
	for _, col := range exportHeader {
		header.AddCell().SetString(col)
	}
	for _, req := range requests {
		row := sheet.AddRow()
		for _, val := range requestExportRow(req) {
			row.AddCell().SetString(val)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="purchase_requests.xlsx"`)
	file.Write(w)
}

func requestExportRow(req models.PurchaseRequest) []string {
	return []string{
		strconv.Itoa(req.ID),
		req.ItemType,
		req.ItemTitle,
		req.Name,
		req.Phone,
		req.Email,
		req.Message,
		req.Status,
		req.CreatedAt.Format(time.RFC3339),
	}
}
