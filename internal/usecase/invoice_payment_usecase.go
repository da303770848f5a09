package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"printdesk/internal/domain/entities"
	"printdesk/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvoicePaymentNotFound         = errors.New("invoice payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentInvoiceID        = errors.New("invalid invoice_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInvoiceAlreadyPaid             = errors.New("invoice already paid")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const sandboxFallbackPayerEmail = "test_user_br@testuser.com"

// PaymentSettings carries the provider options the payment flow depends on.
type PaymentSettings struct {
	// Mock skips the provider and approves every payment locally.
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (s PaymentSettings) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(s.AccessToken), "TEST-")
}

// IInvoicePaymentUseCase settles invoices through the payment provider.
//
// CreateAndApprove charges the invoice total, stores the provider response
// and marks the invoice as paid when the provider approves it.
type IInvoicePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo        interfaces.IInvoicePaymentRepository
	invoiceRepo interfaces.IInvoiceRepository
	gateway     interfaces.IPaymentGateway
	settings    PaymentSettings
	log         *zap.Logger
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(
	repo interfaces.IInvoicePaymentRepository,
	invoiceRepo interfaces.IInvoiceRepository,
	gateway interfaces.IPaymentGateway,
	settings PaymentSettings,
	logger *zap.Logger,
) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{repo: repo, invoiceRepo: invoiceRepo, gateway: gateway, settings: settings, log: logger}
}

func (u *InvoicePaymentUseCase) CreateAndApprove(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.InvoicePayment, error) {
	u.log.Info("[payment][usecase] create-and-approve start", zap.String("raw_invoice_id", invoiceID), zap.Int("payload_len", len(mpPayload)))
	mockMode := u.settings.Mock
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.InvoicePayment{}, ErrInvalidPaymentInvoiceID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			u.log.Warn("[payment][usecase] invalid payload", zap.String("invoice_id", invoiceID))
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		u.log.Error("[payment][usecase] gateway not configured", zap.String("invoice_id", invoiceID))
		return entities.InvoicePayment{}, ErrPaymentGatewayNotConfigured
	}
	if u.invoiceRepo == nil {
		return entities.InvoicePayment{}, errors.New("invoice repository not configured")
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		u.log.Error("[payment][usecase] failed loading invoice", zap.String("invoice_id", invoiceID), zap.Error(err))
		return entities.InvoicePayment{}, err
	}
	if inv.ID == "" {
		return entities.InvoicePayment{}, ErrInvoiceNotFound
	}
	if inv.Status == entities.InvoiceStatusPaid {
		u.log.Warn("[payment][usecase] invoice already paid", zap.String("invoice_id", invoiceID))
		return entities.InvoicePayment{}, ErrInvoiceAlreadyPaid
	}

	// Mercado Pago reconciles events through external_reference.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			u.normalizeSandboxPayerFromUserID(reqMap)
			u.ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			u.log.Warn("[payment][usecase] missing/invalid payer", zap.String("invoice_id", invoiceID))
			return entities.InvoicePayment{}, ErrInvalidMPPayload
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = invoiceID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Invoice %s", invoiceID)
		}
		// The stored invoice total is the amount charged, whatever the caller sent.
		reqMap["transaction_amount"] = inv.TotalAmount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		u.log.Warn("[payment][usecase] payload is not an object", zap.String("invoice_id", invoiceID), zap.Error(err))
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		u.log.Info("[payment][usecase] mock mode enabled; skipping external payment gateway", zap.String("invoice_id", invoiceID))
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(mpPayload, inv)
		if err != nil {
			return entities.InvoicePayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			u.log.Error("[payment][usecase] payment gateway failed", zap.String("invoice_id", invoiceID), zap.Error(err))
			return entities.InvoicePayment{}, classifyGatewayError(err)
		}
	}
	u.log.Info("[payment][usecase] payment gateway success",
		zap.String("invoice_id", invoiceID),
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("[payment][usecase] provider response unmarshal failed", zap.String("invoice_id", invoiceID), zap.Error(err))
	}

	p := entities.InvoicePayment{
		ID:                 providerPaymentID,
		InvoiceID:          invoiceID,
		Amount:             inv.TotalAmount,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("[payment][usecase] payment repository create failed", zap.String("invoice_id", invoiceID), zap.String("payment_id", p.ID), zap.Error(err))
		return entities.InvoicePayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		inv.Status = entities.InvoiceStatusPaid
		if _, err := u.invoiceRepo.Update(ctx, inv); err != nil {
			u.log.Error("[payment][usecase] invoice status update failed", zap.String("invoice_id", invoiceID), zap.Error(err))
			return entities.InvoicePayment{}, err
		}
	}
	u.log.Info("[payment][usecase] create-and-approve success", zap.String("invoice_id", invoiceID), zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func mockProviderResponse(payload json.RawMessage, inv entities.Invoice) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &resp)
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now
	if _, ok := resp["external_reference"]; !ok {
		resp["external_reference"] = inv.ID
	}
	if _, ok := resp["transaction_amount"]; !ok {
		resp["transaction_amount"] = inv.TotalAmount
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *InvoicePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts payer.id or payer.email; only fill email when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.settings.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.settings.sandbox() {
			payer["email"] = sandboxFallbackPayerEmail
		}
	}
}

func (u *InvoicePaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.settings.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.settings.TestPayerUserID)
	email := strings.TrimSpace(u.settings.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.log.Info("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *InvoicePaymentUseCase) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoicePayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if p.ID == "" {
		return entities.InvoicePayment{}, ErrInvoicePaymentNotFound
	}
	return p, nil
}

func (u *InvoicePaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidPaymentInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}
