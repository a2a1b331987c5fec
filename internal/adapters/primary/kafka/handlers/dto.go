package handlers

import "github.com/Aayushsharma490/viprakarma-sub003/internal/domain"

type ChartRequest struct {
	Birth domain.BirthInput `json:"birth"`
}

type DashaRequest struct {
	Birth domain.BirthInput `json:"birth"`
	Depth int               `json:"depth"`
	Mode  string            `json:"mode"`
}

type MatchingRequest struct {
	Boy            domain.BirthInput `json:"boy"`
	Girl           domain.BirthInput `json:"girl"`
	DoshaReference string            `json:"dosha_reference"`
}

// DashaResult дерево даш вместе с накшатрой Луны, от которой оно построено
type DashaResult struct {
	Moon  *domain.NakshatraPlacement `json:"moon,omitempty"`
	Dasha *domain.DashaPeriod        `json:"dasha"`
}

// Response конверт ответа в compute_responses
type Response struct {
	RequestID string     `json:"request_id"`
	Action    string     `json:"action"`
	Status    string     `json:"status"`
	Result    any        `json:"result,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
