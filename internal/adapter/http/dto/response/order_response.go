package response

import (
	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase"
)

// MoveResultResponse is one order's outcome in a bulk move.
type MoveResultResponse struct {
	OrderID string          `json:"orderId"`
	Status  string          `json:"status"`
	Order   *entities.Order `json:"order,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type BulkMoveResponse struct {
	Committed int                  `json:"committed"`
	Failed    int                  `json:"failed"`
	Results   []MoveResultResponse `json:"results"`
}

func FromMoveOutcomes(outcomes []usecase.MoveOutcome) BulkMoveResponse {
	res := BulkMoveResponse{Results: make([]MoveResultResponse, 0, len(outcomes))}
	for _, o := range outcomes {
		r := MoveResultResponse{OrderID: o.OrderID, Status: string(o.Status), Order: o.Order}
		if o.Err != nil {
			r.Error = o.Err.Error()
		}
		if o.Status == usecase.MoveCommitted {
			res.Committed++
		} else {
			res.Failed++
		}
		res.Results = append(res.Results, r)
	}
	return res
}

type RefiningFeedbackResponse struct {
	OrderID  string `json:"orderId"`
	Feedback string `json:"feedback"`
}
