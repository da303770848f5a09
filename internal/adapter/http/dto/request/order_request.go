package request

import (
	"strings"

	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase"
)

type OrderCreateRequest struct {
	ID            string                      `json:"id"`
	Customer      string                      `json:"customer" binding:"required"`
	Phone         string                      `json:"phone"`
	Email         string                      `json:"email"`
	Total         float64                     `json:"total"`
	Status        string                      `json:"status"`
	Priority      entities.Priority           `json:"priority"`
	Deadline      string                      `json:"deadline"`
	Source        string                      `json:"source"`
	InvoiceNo     string                      `json:"invoiceNo"`
	Specs         entities.OrderSpecs         `json:"specs"`
	FileStatus    entities.FileStatus         `json:"fileStatus"`
	PaymentStatus entities.OrderPaymentStatus `json:"paymentStatus"`
	PaymentMethod string                      `json:"paymentMethod"`
	AgentID       string                      `json:"agentId"`
}

func (r OrderCreateRequest) ToEntity() entities.Order {
	return entities.Order{
		ID:            strings.TrimSpace(r.ID),
		Customer:      r.Customer,
		Phone:         r.Phone,
		Email:         r.Email,
		Total:         r.Total,
		Status:        r.Status,
		Priority:      r.Priority,
		Deadline:      r.Deadline,
		Source:        r.Source,
		InvoiceNo:     r.InvoiceNo,
		Specs:         r.Specs,
		FileStatus:    r.FileStatus,
		PaymentStatus: r.PaymentStatus,
		PaymentMethod: r.PaymentMethod,
		AgentID:       r.AgentID,
	}
}

// OrderUpdateRequest is a partial update; absent fields are left as stored.
type OrderUpdateRequest struct {
	Customer      *string                      `json:"customer"`
	Phone         *string                      `json:"phone"`
	Email         *string                      `json:"email"`
	Total         *float64                     `json:"total"`
	Status        *string                      `json:"status"`
	Priority      *entities.Priority           `json:"priority"`
	Deadline      *string                      `json:"deadline"`
	Specs         *entities.OrderSpecs         `json:"specs"`
	FileStatus    *entities.FileStatus         `json:"fileStatus"`
	PaymentStatus *entities.OrderPaymentStatus `json:"paymentStatus"`
	PaymentMethod *string                      `json:"paymentMethod"`
	AgentID       *string                      `json:"agentId"`
}

func (r OrderUpdateRequest) ToPatch() usecase.OrderPatch {
	return usecase.OrderPatch{
		Customer:      r.Customer,
		Phone:         r.Phone,
		Email:         r.Email,
		Total:         r.Total,
		Status:        r.Status,
		Priority:      r.Priority,
		Deadline:      r.Deadline,
		Specs:         r.Specs,
		FileStatus:    r.FileStatus,
		PaymentStatus: r.PaymentStatus,
		PaymentMethod: r.PaymentMethod,
		AgentID:       r.AgentID,
	}
}

// MoveOrderRequest targets a column by id or title.
type MoveOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

type BulkMoveRequest struct {
	OrderIDs []string `json:"orderIds" binding:"required"`
	Status   string   `json:"status" binding:"required"`
}

type ProofUploadRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	Comment  string `json:"comment"`
}

type ProofResponseRequest struct {
	Approved *bool  `json:"approved" binding:"required"`
	Reason   string `json:"reason"`
}

type IssueReportRequest struct {
	Type        entities.IssueType `json:"type" binding:"required"`
	Description string             `json:"description" binding:"required"`
}
