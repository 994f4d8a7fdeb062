package handler

import (
	"encoding/json"
	"net/http"

	"github.com/terroir-ai/backend/internal/model"
	"github.com/terroir-ai/backend/internal/service"
)

// ExperimentHandler manages lightweight A/B experiment records.
type ExperimentHandler struct {
	experimentService service.ExperimentService
}

// NewExperimentHandler creates an ExperimentHandler with the given service.
func NewExperimentHandler(experimentService service.ExperimentService) *ExperimentHandler {
	return &ExperimentHandler{experimentService: experimentService}
}

// List handles GET /experiments.
func (h *ExperimentHandler) List(w http.ResponseWriter, r *http.Request) {
	exps, err := h.experimentService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if exps == nil {
		exps = []*model.Experiment{}
	}
	writeJSON(w, http.StatusOK, exps)
}

// createExperimentRequest is the expected JSON body for POST /experiments.
type createExperimentRequest struct {
	Name          string   `json:"name"`
	Hypothesis    string   `json:"hypothesis"`
	MetricName    string   `json:"metric_name"`
	BaselineValue *float64 `json:"baseline_value"`
	TargetValue   *float64 `json:"target_value"`
}

// Create handles POST /experiments.
func (h *ExperimentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createExperimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	exp := &model.Experiment{
		Name:          req.Name,
		Hypothesis:    req.Hypothesis,
		MetricName:    req.MetricName,
		BaselineValue: req.BaselineValue,
		TargetValue:   req.TargetValue,
	}
	if err := h.experimentService.Create(r.Context(), exp); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, exp)
}
